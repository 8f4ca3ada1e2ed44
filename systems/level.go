package systems

import (
	"github.com/automoto/lavarun/components"
	"github.com/automoto/lavarun/shared/world"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the singleton level data, or nil before the level exists.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// currentLevel returns the live level, or nil when there is nothing to step.
func currentLevel(e *ecs.ECS) (*components.LevelData, *world.Level) {
	data := GetLevel(e)
	if data == nil || data.Level == nil {
		return nil, nil
	}
	return data, data.Level
}

// fail records the first error hit while stepping.
func fail(data *components.LevelData, err error) {
	if data.Err == nil {
		data.Err = err
	}
}

// IsLevelDone reports whether the level has finished or stopped on an error.
func IsLevelDone(e *ecs.ECS) bool {
	data, lvl := currentLevel(e)
	if lvl == nil {
		return true
	}
	return data.Err != nil || lvl.IsFinished()
}

// WithLevelCheck wraps a system to skip execution once the level is done
func WithLevelCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelDone(e) {
			return
		}
		system(e)
	}
}
