package components

import "github.com/yohamta/donburi"

// BotData marks the player as computer controlled.
type BotData struct {
	TargetX, TargetY float64
	HasTarget        bool
	Stuck            float64 // seconds without horizontal progress
	LastX            float64
}

var Bot = donburi.NewComponentType[BotData]()
