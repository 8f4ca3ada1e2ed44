package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv collision space, in pixels (tiles * config.Sim.TileSize).
var Space = donburi.NewComponentType[resolv.Space]()

// TileData links a wall tile's collision object to its grid cell.
type TileData struct {
	Object *resolv.Object
	X, Y   int
}

var Tile = donburi.NewComponentType[TileData]()
