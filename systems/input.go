package systems

import (
	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// ApplyInput swaps the input buffers and stores this tick's pressed actions.
// Must run BEFORE UpdateBot and UpdatePlayer in the system order.
func ApplyInput(ecs *ecs.ECS, pressed [cfg.ActionCount]bool) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = pressed
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
