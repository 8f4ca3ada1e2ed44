package factory

import (
	"github.com/automoto/lavarun/archetypes"
	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/world"
	"github.com/automoto/lavarun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates the collision object for the wall tile at (x, y).
func CreateWall(ecs *ecs.ECS, x, y int) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	ts := cfg.Sim.TileSize
	obj := resolv.NewObject(float64(x)*ts, float64(y)*ts, ts, ts, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, ts, ts))
	obj.Data = wall // Link for O(1) lookup

	components.Tile.SetValue(wall, components.TileData{Object: obj, X: x, Y: y})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateTerrain creates a wall object for every wall cell of lvl and
// returns how many it made. Lava stays grid-only: touching it is decided by
// the level, never resolved as a contact.
func CreateTerrain(ecs *ecs.ECS, lvl *world.Level) int {
	n := 0
	for y, row := range lvl.Grid {
		for x, cell := range row {
			if cell != world.ObstacleWall {
				continue
			}
			CreateWall(ecs, x, y)
			n++
		}
	}
	return n
}
