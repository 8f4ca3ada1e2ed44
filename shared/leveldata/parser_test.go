package leveldata

import (
	"math/rand"
	"testing"

	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/gamemath"
	"github.com/automoto/lavarun/shared/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *LevelParser {
	return NewLevelParser(actor.DefaultDictionary(), rand.New(rand.NewSource(42)))
}

func TestObstacleFromSymbol(t *testing.T) {
	p := newTestParser()
	assert.Equal(t, world.ObstacleWall, p.ObstacleFromSymbol('x'))
	assert.Equal(t, world.ObstacleLava, p.ObstacleFromSymbol('!'))
	assert.Equal(t, world.ObstacleNone, p.ObstacleFromSymbol(' '))
	assert.Equal(t, world.ObstacleNone, p.ObstacleFromSymbol('o'))
	assert.Equal(t, world.ObstacleNone, p.ObstacleFromSymbol('X'))
}

func TestActorFromSymbol(t *testing.T) {
	p := newTestParser()
	f, ok := p.ActorFromSymbol('@')
	require.True(t, ok)
	assert.Equal(t, actor.KindPlayer, f(gamemath.Vec(0, 0), nil).Kind())

	_, ok = p.ActorFromSymbol('x')
	assert.False(t, ok)
}

func TestCreateGrid(t *testing.T) {
	p := newTestParser()
	assert.Empty(t, p.CreateGrid(nil))
	assert.Empty(t, p.CreateGrid([]string{}))

	grid := p.CreateGrid([]string{"x!", "o x", ""})
	require.Len(t, grid, 3)
	assert.Equal(t, []world.Obstacle{world.ObstacleWall, world.ObstacleLava}, grid[0])
	assert.Equal(t, []world.Obstacle{world.ObstacleNone, world.ObstacleNone, world.ObstacleWall}, grid[1])
	assert.Empty(t, grid[2])
}

func TestCreateActors(t *testing.T) {
	p := newTestParser()
	actors := p.CreateActors([]string{
		"  v   ",
		" @  o=",
		"xx?|xx",
	})
	require.Len(t, actors, 5)

	assert.Equal(t, actor.VariantFireRain, actors[0].Variant())
	assert.Equal(t, gamemath.Vec(2, 0), actors[0].Pos)

	assert.Equal(t, actor.VariantPlayer, actors[1].Variant())
	assert.Equal(t, gamemath.Vec(1, 0.5), actors[1].Pos)

	assert.Equal(t, actor.VariantCoin, actors[2].Variant())
	assert.InDelta(t, 4.2, actors[2].Base().X, 1e-9)
	assert.InDelta(t, 1.1, actors[2].Base().Y, 1e-9)

	assert.Equal(t, actor.VariantHorizontalFireball, actors[3].Variant())
	assert.Equal(t, gamemath.Vec(5, 1), actors[3].Pos)

	assert.Equal(t, actor.VariantVerticalFireball, actors[4].Variant())
	assert.Equal(t, gamemath.Vec(3, 2), actors[4].Pos)
}

func TestCreateActorsSkipsMissingFactories(t *testing.T) {
	dict := actor.Dictionary{
		'a': nil,
		'b': func(gamemath.Vector, *rand.Rand) *actor.Actor { return nil },
		'c': func(pos gamemath.Vector, _ *rand.Rand) *actor.Actor {
			a, _ := actor.New(pos, actor.DefaultSize, gamemath.Vector{})
			return a
		},
	}
	p := NewLevelParser(dict, nil)
	actors := p.CreateActors([]string{"abc", "cba"})
	require.Len(t, actors, 2)
	assert.Equal(t, gamemath.Vec(2, 0), actors[0].Pos)
	assert.Equal(t, gamemath.Vec(0, 1), actors[1].Pos)
}

func TestNewLevelParserCopiesDictionary(t *testing.T) {
	dict := actor.DefaultDictionary()
	p := NewLevelParser(dict, nil)
	delete(dict, '@')
	dict['x'] = dict['o']

	_, ok := p.ActorFromSymbol('@')
	assert.True(t, ok)
	_, ok = p.ActorFromSymbol('x')
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	p := newTestParser()
	lvl := p.Parse([]string{"x@x", "xxx"})

	assert.Equal(t, 3, lvl.Width)
	assert.Equal(t, 2, lvl.Height)
	require.Len(t, lvl.Actors, 1)
	require.NotNil(t, lvl.Player)
	assert.Equal(t, gamemath.Vec(1, -0.5), lvl.Player.Pos)
	assert.Equal(t, world.StatusNone, lvl.Status)
	assert.Equal(t, world.DefaultFinishDelay, lvl.FinishDelay)
	assert.Equal(t, [][]world.Obstacle{
		{world.ObstacleWall, world.ObstacleNone, world.ObstacleWall},
		{world.ObstacleWall, world.ObstacleWall, world.ObstacleWall},
	}, lvl.Grid)
	for _, c := range [][2]int{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}} {
		assert.Equal(t, world.ObstacleWall, lvl.Cell(c[0], c[1]), "cell %v", c)
	}
	assert.Equal(t, world.ObstacleNone, lvl.Cell(1, 0))
}

func TestParseDeterministicCoins(t *testing.T) {
	plan := []string{"o o o"}
	a := NewLevelParser(actor.DefaultDictionary(), rand.New(rand.NewSource(3))).Parse(plan)
	b := NewLevelParser(actor.DefaultDictionary(), rand.New(rand.NewSource(3))).Parse(plan)
	require.Len(t, a.Actors, 3)
	for i := range a.Actors {
		assert.Equal(t, a.Actors[i].Spring(), b.Actors[i].Spring())
	}
}
