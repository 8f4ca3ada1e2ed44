package components

import "github.com/yohamta/donburi"

type ClockData struct {
	Step    float64 // seconds advanced by the current tick
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
