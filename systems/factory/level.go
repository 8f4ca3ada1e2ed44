package factory

import (
	"github.com/automoto/lavarun/archetypes"
	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton holding lvl. The finish delay is
// taken from config.
func CreateLevel(ecs *ecs.ECS, lvl *world.Level, index int, name string, attempt int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	lvl.FinishDelay = cfg.Sim.FinishDelay
	components.Level.SetValue(level, components.LevelData{
		Level:   lvl,
		Index:   index,
		Name:    name,
		Attempt: attempt,
	})

	return level
}
