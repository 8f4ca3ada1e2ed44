package factory

import (
	"math"

	"github.com/automoto/lavarun/archetypes"
	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates a collision space covering lvl, one cell per tile.
func CreateSpace(ecs *ecs.ECS, lvl *world.Level) *donburi.Entry {
	ts := int(math.Max(1, cfg.Sim.TileSize))
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(max(lvl.Width, 1)*ts, max(lvl.Height, 1)*ts, ts, ts)
	components.Space.Set(space, spaceData)
	return space
}
