package actor

import (
	"math"
	"math/rand"

	"github.com/automoto/lavarun/shared/gamemath"
)

const (
	CoinSpringSpeed = 8
	CoinSpringDist  = 0.07
)

var (
	// CoinOffset centres the coin's hitbox inside its tile.
	CoinOffset = gamemath.Vec(0.2, 0.1)
	CoinSize   = gamemath.Vec(0.6, 0.6)
)

// NewCoin creates a coin for the tile at pos. phase is the starting spring
// phase in radians; RandomPhase draws one.
func NewCoin(pos gamemath.Vector, phase float64) (*Actor, error) {
	a, err := newActor(VariantCoin, pos.Plus(CoinOffset), CoinSize, gamemath.Vector{})
	if err != nil {
		return nil, err
	}
	a.base = a.Pos
	a.spring = phase
	return a, nil
}

// RandomPhase returns a spring phase uniformly distributed in [0, 2π).
// A nil rng uses the shared math/rand source.
func RandomPhase(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64() * 2 * math.Pi
	}
	return rng.Float64() * 2 * math.Pi
}

// Spring returns the current bob phase.
func (a *Actor) Spring() float64 {
	return a.spring
}

// Base returns the position the coin bobs around.
func (a *Actor) Base() gamemath.Vector {
	return a.base
}

// UpdateSpring advances the bob phase by step seconds.
func (a *Actor) UpdateSpring(step float64) {
	a.spring += CoinSpringSpeed * step
}

// SpringVector returns the current bob offset from the base position.
func (a *Actor) SpringVector() gamemath.Vector {
	return gamemath.Vec(0, math.Sin(a.spring)*CoinSpringDist)
}

func actCoin(a *Actor, step float64, _ Terrain) error {
	a.UpdateSpring(step)
	a.Pos = a.base.Plus(a.SpringVector())
	return nil
}
