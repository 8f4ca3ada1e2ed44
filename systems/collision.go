package systems

import (
	"github.com/automoto/lavarun/shared/world"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts reports the lava or actor the player overlaps after
// everything has moved.
func UpdateContacts(e *ecs.ECS) {
	data, lvl := currentLevel(e)
	if lvl == nil || lvl.Player == nil || lvl.Status != world.StatusNone {
		return
	}
	p := lvl.Player

	obstacle, err := lvl.ObstacleAt(p.Pos, p.Size)
	if err != nil {
		fail(data, err)
		return
	}
	if obstacle == world.ObstacleLava {
		lvl.PlayerTouched(world.TouchLava, nil)
		return
	}

	other, err := lvl.ActorAt(p)
	if err != nil {
		fail(data, err)
		return
	}
	if other != nil {
		lvl.PlayerTouched(world.TouchOfActor(other), other)
	}
}
