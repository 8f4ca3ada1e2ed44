package leveldata

import (
	"math/rand"
	"time"

	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/gamemath"
	"github.com/automoto/lavarun/shared/world"
)

// LevelParser converts plans into levels using a symbol dictionary.
type LevelParser struct {
	dictionary actor.Dictionary
	rng        *rand.Rand
}

// NewLevelParser copies dict, so later changes to the caller's map do not
// reach the parser. rng seeds coin phases; nil uses a time-seeded source.
func NewLevelParser(dict actor.Dictionary, rng *rand.Rand) *LevelParser {
	copied := make(actor.Dictionary, len(dict))
	for sym, f := range dict {
		copied[sym] = f
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &LevelParser{dictionary: copied, rng: rng}
}

// ActorFromSymbol returns the factory registered for r.
func (p *LevelParser) ActorFromSymbol(r rune) (actor.Factory, bool) {
	f, ok := p.dictionary[r]
	return f, ok
}

// ObstacleFromSymbol maps 'x' to wall and '!' to lava; anything else is passable.
func (p *LevelParser) ObstacleFromSymbol(r rune) world.Obstacle {
	switch r {
	case 'x':
		return world.ObstacleWall
	case '!':
		return world.ObstacleLava
	}
	return world.ObstacleNone
}

// CreateGrid maps every character of the plan to its obstacle.
func (p *LevelParser) CreateGrid(plan []string) [][]world.Obstacle {
	grid := make([][]world.Obstacle, 0, len(plan))
	for _, row := range plan {
		cells := make([]world.Obstacle, 0, len(row))
		for _, r := range row {
			cells = append(cells, p.ObstacleFromSymbol(r))
		}
		grid = append(grid, cells)
	}
	return grid
}

// CreateActors instantiates an actor for every plan character with a
// factory, spawned at (column, row). Characters without a factory, and
// factories that yield no actor, are skipped.
func (p *LevelParser) CreateActors(plan []string) []*actor.Actor {
	var actors []*actor.Actor
	for y, row := range plan {
		x := 0
		for _, r := range row {
			if f, ok := p.ActorFromSymbol(r); ok && f != nil {
				if a := f(gamemath.Vec(float64(x), float64(y)), p.rng); a != nil {
					actors = append(actors, a)
				}
			}
			x++
		}
	}
	return actors
}

// Parse builds a level from plan.
func (p *LevelParser) Parse(plan []string) *world.Level {
	return world.New(p.CreateGrid(plan), p.CreateActors(plan))
}
