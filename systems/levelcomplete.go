package systems

import (
	"github.com/automoto/lavarun/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinish advances the clock and, once the level is decided, spends
// its finish delay.
func UpdateFinish(e *ecs.ECS) {
	_, lvl := currentLevel(e)
	if lvl == nil {
		return
	}
	clock := getOrCreateClock(e)
	clock.Elapsed += clock.Step
	clock.Ticks++
	lvl.CountDown(clock.Step)
}

// Clock returns a copy of the tick clock.
func Clock(e *ecs.ECS) components.ClockData {
	return *getOrCreateClock(e)
}
