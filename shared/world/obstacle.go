package world

import "github.com/automoto/lavarun/shared/actor"

// Obstacle classifies a grid cell. The zero value is passable.
type Obstacle string

const (
	ObstacleNone Obstacle = ""
	ObstacleWall Obstacle = "wall"
	ObstacleLava Obstacle = "lava"
)

// Solid reports whether the cell blocks movement.
func (o Obstacle) Solid() bool {
	return o != ObstacleNone
}

// Touch names whatever the player ran into: an obstacle kind or an actor
// kind. Both share one name space so a single entry point handles them.
type Touch string

const (
	TouchWall     = Touch(ObstacleWall)
	TouchLava     = Touch(ObstacleLava)
	TouchFireball = Touch(actor.KindFireball)
	TouchCoin     = Touch(actor.KindCoin)
)

// TouchOf converts an obstacle into a touch.
func TouchOf(o Obstacle) Touch {
	return Touch(o)
}

// TouchOfActor converts an actor's kind into a touch.
func TouchOfActor(a *actor.Actor) Touch {
	return Touch(a.Kind())
}

// Status is the outcome of a level.
type Status int

const (
	StatusNone Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "none"
}
