package systems

import (
	"github.com/automoto/lavarun/components"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// StartTick records the step the following systems advance by.
func StartTick(ecs *ecs.ECS, step float64) {
	getOrCreateClock(ecs).Step = step
}

// Step returns the step of the tick being processed.
func Step(ecs *ecs.ECS) float64 {
	return getOrCreateClock(ecs).Step
}
