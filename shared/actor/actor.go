// Package actor holds the moving entities of a level: the player, coins and
// the fireball family. Every entity is one Actor struct; the variant decides
// which per-tick rule runs.
package actor

import (
	"fmt"

	"github.com/automoto/lavarun/shared/gamemath"
)

// Kind is the read-only category of an actor as seen by the level.
type Kind string

const (
	KindActor    Kind = "actor"
	KindFireball Kind = "fireball"
	KindCoin     Kind = "coin"
	KindPlayer   Kind = "player"
)

// DefaultSize is the size of a plain actor when the caller has no better one.
var DefaultSize = gamemath.Vec(1, 1)

// Terrain is the part of a level an actor consults while moving.
type Terrain interface {
	Blocked(pos, size gamemath.Vector) (bool, error)
}

// Actor is a positioned, sized axis-aligned box with a per-tick rule.
// Pos and Speed are mutated in place by Act; the driver may also move the
// player directly.
type Actor struct {
	Pos   gamemath.Vector
	Size  gamemath.Vector
	Speed gamemath.Vector

	variant Variant

	// Fire rain returns here after hitting something.
	start gamemath.Vector

	// Coin bob state.
	base   gamemath.Vector
	spring float64
}

// New creates a plain actor. It fails with an invalid-argument TypeError if
// a vector is not finite or the size is negative.
func New(pos, size, speed gamemath.Vector) (*Actor, error) {
	return newActor(VariantActor, pos, size, speed)
}

func newActor(v Variant, pos, size, speed gamemath.Vector) (*Actor, error) {
	op := "new " + v.String()
	for _, vec := range []gamemath.Vector{pos, size, speed} {
		if err := vec.Validate(op, gamemath.ReasonInvalidArgument); err != nil {
			return nil, err
		}
	}
	if size.X < 0 || size.Y < 0 {
		return nil, &gamemath.TypeError{Op: op, Reason: gamemath.ReasonInvalidArgument, Value: size}
	}
	return &Actor{
		Pos:     pos,
		Size:    size,
		Speed:   speed,
		variant: v,
		start:   pos,
	}, nil
}

// Kind returns the category fixed by the actor's variant.
func (a *Actor) Kind() Kind {
	return behaviors[a.variant].kind
}

// Variant returns the concrete actor type.
func (a *Actor) Variant() Variant {
	return a.variant
}

func (a *Actor) Left() float64   { return a.Pos.X }
func (a *Actor) Top() float64    { return a.Pos.Y }
func (a *Actor) Right() float64  { return a.Pos.X + a.Size.X }
func (a *Actor) Bottom() float64 { return a.Pos.Y + a.Size.Y }

// IsIntersect reports whether a and other overlap with positive area.
// An actor never intersects itself, and boxes that only share an edge do
// not intersect.
func (a *Actor) IsIntersect(other *Actor) (bool, error) {
	if other == nil {
		return false, &gamemath.TypeError{Op: "intersect", Reason: gamemath.ReasonInvalidArgument}
	}
	if other == a {
		return false, nil
	}
	return other.Left() < a.Right() &&
		other.Top() < a.Bottom() &&
		other.Right() > a.Left() &&
		other.Bottom() > a.Top(), nil
}

// Act advances the actor by step seconds against the given terrain.
func (a *Actor) Act(step float64, terrain Terrain) error {
	b := behaviors[a.variant]
	if b.act == nil {
		return nil
	}
	return b.act(a, step, terrain)
}

// HandleObstacle applies the variant's reaction to running into terrain.
// It is a no-op for variants that never collide.
func (a *Actor) HandleObstacle() {
	if h := behaviors[a.variant].onObstacle; h != nil {
		h(a)
	}
}

// Start returns the position the actor spawned at.
func (a *Actor) Start() gamemath.Vector {
	return a.start
}

func (a *Actor) String() string {
	return fmt.Sprintf("%s(pos=%v size=%v)", a.variant, a.Pos, a.Size)
}
