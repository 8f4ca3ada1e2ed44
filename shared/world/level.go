// Package world holds a parsed level: the static obstacle grid, the live
// actors and the won/lost state machine.
package world

import (
	"math"

	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/gamemath"
)

// DefaultFinishDelay is how long, in seconds, a decided level keeps running.
const DefaultFinishDelay = 1.0

// Level is one playable level. The driver owns it; nothing here locks.
type Level struct {
	Grid   [][]Obstacle
	Actors []*actor.Actor

	// Player is the first actor of kind player, nil when the level has none.
	Player *actor.Actor

	Width  int
	Height int

	Status      Status
	FinishDelay float64
}

// New builds a level from a grid and an actor list. Both are copied.
func New(grid [][]Obstacle, actors []*actor.Actor) *Level {
	l := &Level{
		Grid:        make([][]Obstacle, len(grid)),
		Actors:      make([]*actor.Actor, 0, len(actors)),
		Height:      len(grid),
		FinishDelay: DefaultFinishDelay,
	}
	for y, row := range grid {
		l.Grid[y] = append([]Obstacle(nil), row...)
		if len(row) > l.Width {
			l.Width = len(row)
		}
	}
	for _, a := range actors {
		if a == nil {
			continue
		}
		l.Actors = append(l.Actors, a)
		if l.Player == nil && a.Kind() == actor.KindPlayer {
			l.Player = a
		}
	}
	return l
}

// Cell returns the obstacle at a grid cell. Cells outside the grid, and
// cells past the end of a short row, are passable.
func (l *Level) Cell(x, y int) Obstacle {
	if y < 0 || y >= len(l.Grid) || x < 0 || x >= len(l.Grid[y]) {
		return ObstacleNone
	}
	return l.Grid[y][x]
}

// IsFinished reports whether the level is decided and its finish delay ran out.
func (l *Level) IsFinished() bool {
	return l.Status != StatusNone && l.FinishDelay < 0
}

// CountDown consumes step seconds of the finish delay once the level is decided.
func (l *Level) CountDown(step float64) {
	if l.Status == StatusNone {
		return
	}
	l.FinishDelay -= step
}

// ActorAt returns the first actor, in list order, that intersects a.
func (l *Level) ActorAt(a *actor.Actor) (*actor.Actor, error) {
	if a == nil {
		return nil, &gamemath.TypeError{Op: "actor at", Reason: gamemath.ReasonInvalidArgument}
	}
	for _, candidate := range l.Actors {
		hit, err := candidate.IsIntersect(a)
		if err != nil {
			return nil, err
		}
		if hit {
			return candidate, nil
		}
	}
	return nil, nil
}

// ObstacleAt returns the first obstacle covered by the box at pos with the
// given size. Leaving the grid sideways or through the top hits a wall;
// dropping below the last row hits lava.
func (l *Level) ObstacleAt(pos, size gamemath.Vector) (Obstacle, error) {
	if err := pos.Validate("obstacle at", gamemath.ReasonInvalidArgument); err != nil {
		return ObstacleNone, err
	}
	if err := size.Validate("obstacle at", gamemath.ReasonInvalidArgument); err != nil {
		return ObstacleNone, err
	}
	if size.X < 0 || size.Y < 0 {
		return ObstacleNone, &gamemath.TypeError{Op: "obstacle at", Reason: gamemath.ReasonInvalidArgument, Value: size}
	}

	xStart := math.Floor(pos.X)
	xEnd := math.Ceil(pos.X + size.X)
	yStart := math.Floor(pos.Y)
	yEnd := math.Ceil(pos.Y + size.Y)

	if xStart < 0 || xEnd > float64(l.Width) || yStart < 0 {
		return ObstacleWall, nil
	}
	if yEnd > float64(l.Height) {
		return ObstacleLava, nil
	}

	for y := int(yStart); y < int(yEnd); y++ {
		for x := int(xStart); x < int(xEnd); x++ {
			if o := l.Cell(x, y); o.Solid() {
				return o, nil
			}
		}
	}
	return ObstacleNone, nil
}

// Blocked reports whether any obstacle covers the box. It lets actors move
// against a level without knowing obstacle kinds.
func (l *Level) Blocked(pos, size gamemath.Vector) (bool, error) {
	o, err := l.ObstacleAt(pos, size)
	return o.Solid(), err
}

// RemoveActor drops a from the level by identity. The actor list is
// replaced, not compacted, so callers ranging over the old slice are safe.
func (l *Level) RemoveActor(a *actor.Actor) {
	kept := make([]*actor.Actor, 0, len(l.Actors))
	for _, candidate := range l.Actors {
		if candidate != a {
			kept = append(kept, candidate)
		}
	}
	l.Actors = kept
	if l.Player == a {
		l.Player = nil
	}
}

// NoMoreActors reports whether no actor of the given kind is left.
func (l *Level) NoMoreActors(kind actor.Kind) bool {
	for _, a := range l.Actors {
		if a.Kind() == kind {
			return false
		}
	}
	return true
}

// PlayerTouched is the level's only state transition. Lava and fireballs
// lose the level; a coin is collected and the last coin wins it. Once
// decided, the status never changes.
func (l *Level) PlayerTouched(touch Touch, a *actor.Actor) {
	if l.Status != StatusNone {
		return
	}

	switch touch {
	case TouchLava, TouchFireball:
		l.Status = StatusLost
	case TouchCoin:
		l.RemoveActor(a)
		if l.NoMoreActors(actor.KindCoin) {
			l.Status = StatusWon
		}
	}
}
