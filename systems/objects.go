package systems

import "github.com/yohamta/donburi/ecs"

// UpdateActors runs every non-player actor's rule for this tick, in list
// order. The player moves in UpdatePlayer.
func UpdateActors(e *ecs.ECS) {
	data, lvl := currentLevel(e)
	if lvl == nil {
		return
	}
	step := Step(e)
	for _, a := range lvl.Actors {
		if a == lvl.Player {
			continue
		}
		if err := a.Act(step, lvl); err != nil {
			fail(data, err)
			return
		}
	}
}
