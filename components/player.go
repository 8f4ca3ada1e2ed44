package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Body mirrors the player actor in the resolv space.
	Body     *resolv.Object
	OnGround bool
	Snaps    int // wall contacts resolved through the space
}

var Player = donburi.NewComponentType[PlayerData]()
