package core

import (
	"context"
	"math/rand"
	"testing"
	"time"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/levels"
	"github.com/automoto/lavarun/shared/leveldata"
	"github.com/automoto/lavarun/shared/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	coinRight = leveldata.Plan{" ", "@o", "xx"}
	lavaPit   = leveldata.Plan{"   ", " @ ", "   ", "!!!"}
	botWalk   = leveldata.Plan{"     ", "@  o ", "xxxxx"}
)

func named(plans ...leveldata.Plan) []leveldata.NamedPlan {
	out := make([]leveldata.NamedPlan, len(plans))
	for i, p := range plans {
		out[i] = leveldata.NamedPlan{Name: string(rune('a' + i)), Plan: p}
	}
	return out
}

func newGame(t *testing.T, opts GameOptions, plans ...leveldata.Plan) *Game {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	g, err := NewGame(named(plans...), opts)
	require.NoError(t, err)
	return g
}

func right() [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	pressed[cfg.ActionMoveRight] = true
	return pressed
}

func TestNewGameNeedsLevels(t *testing.T) {
	_, err := NewGame(nil, GameOptions{})
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestGameAdvancesOnWin(t *testing.T) {
	g := newGame(t, GameOptions{}, coinRight, coinRight)
	assert.NotEmpty(t, g.ID.String())
	g.SetInput(right())

	require.NoError(t, g.Run(context.Background(), 60, false))
	assert.True(t, g.Done())

	results := g.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Level)
	assert.Equal(t, "b", results[1].Level)
	for _, r := range results {
		assert.Equal(t, world.StatusWon, r.Status)
		assert.Equal(t, 1, r.Attempt)
	}

	ticks := g.Ticks()
	require.NoError(t, g.Step(1))
	assert.Equal(t, ticks, g.Ticks())
}

func TestGameRestartsOnLoss(t *testing.T) {
	g := newGame(t, GameOptions{MaxTicks: 400}, lavaPit, coinRight)

	err := g.Run(context.Background(), 60, false)
	assert.ErrorIs(t, err, ErrTickLimit)
	assert.False(t, g.Done())

	results := g.Results()
	require.GreaterOrEqual(t, len(results), 2)
	for i, r := range results {
		assert.Equal(t, "a", r.Level)
		assert.Equal(t, world.StatusLost, r.Status)
		assert.Equal(t, i+1, r.Attempt)
	}
	index, name := g.Level()
	assert.Equal(t, 0, index)
	assert.Equal(t, "a", name)
	assert.Equal(t, len(results)+1, g.Scene().Options().Attempt)
}

func TestGameWithBot(t *testing.T) {
	g := newGame(t, GameOptions{Bot: true, MaxTicks: 2000}, botWalk)
	require.NoError(t, g.Run(context.Background(), 60, false))
	assert.True(t, g.Done())
}

func TestGameRunCancelled(t *testing.T) {
	g := newGame(t, GameOptions{}, lavaPit)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Run(ctx, 60, false), context.Canceled)
}

func TestGameRunRealtime(t *testing.T) {
	cfg.Sim.FinishDelay = 0.05
	t.Cleanup(cfg.Reset)

	g := newGame(t, GameOptions{}, coinRight)
	g.SetInput(right())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, g.Run(ctx, 200, true))
	assert.True(t, g.Done())
}

func TestGameReload(t *testing.T) {
	g := newGame(t, GameOptions{}, lavaPit)
	require.NoError(t, g.Reload([]leveldata.NamedPlan{{Name: "fresh", Plan: coinRight}}))

	index, name := g.Level()
	assert.Equal(t, 0, index)
	assert.Equal(t, "fresh", name)
	assert.Equal(t, 1, g.LevelCount())
	assert.Equal(t, 1, g.Scene().Options().Attempt)

	assert.ErrorIs(t, g.Reload(nil), ErrNoLevels)
}

func TestGameLoopStops(t *testing.T) {
	calls := 0
	loop := NewGameLoop(1000, func(step float64) bool {
		calls++
		assert.InDelta(t, 0.001, step, 1e-12)
		return calls < 3
	})
	loop.Run(context.Background())
	assert.Equal(t, 3, calls)

	loop.Stop()
	loop.Stop()
}

func TestGameLoopStopBeforeRun(t *testing.T) {
	loop := NewGameLoop(10, func(float64) bool { return true })
	loop.Stop()

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestBotClearsDefaultLevels(t *testing.T) {
	plans, err := levels.Default()
	require.NoError(t, err)

	for seed := int64(1); seed <= 3; seed++ {
		g, err := NewGame(plans, GameOptions{
			Rand:     rand.New(rand.NewSource(seed)),
			Bot:      true,
			MaxTicks: cfg.Sim.MaxTicks,
		})
		require.NoError(t, err)
		require.NoError(t, g.Run(context.Background(), 60, false), "seed %d", seed)
		assert.True(t, g.Done(), "seed %d", seed)

		won := 0
		for _, r := range g.Results() {
			if r.Status == world.StatusWon {
				won++
			}
		}
		assert.Equal(t, len(plans), won, "seed %d", seed)
	}
}
