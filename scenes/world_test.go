package scenes

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/leveldata"
	"github.com/automoto/lavarun/shared/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newScene(t *testing.T, plan []string, opts LevelOptions) *LevelScene {
	t.Helper()
	parser := leveldata.NewLevelParser(actor.DefaultDictionary(), rand.New(rand.NewSource(1)))
	return NewLevelScene(parser.Parse(plan), opts)
}

func hold(actions ...cfg.ActionID) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	return pressed
}

// run steps the scene until it finishes or n ticks pass.
func run(t *testing.T, s *LevelScene, n int) {
	t.Helper()
	for i := 0; i < n && !s.Finished(); i++ {
		require.NoError(t, s.Update(tick))
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	s := newScene(t, []string{
		"   ",
		" @ ",
		"   ",
		"xxx",
	}, LevelOptions{})
	run(t, s, 60)

	p := s.Level().Player
	assert.InDelta(t, 3.0, p.Bottom(), 1e-6)
	assert.Equal(t, 0.0, p.Speed.Y)
	assert.True(t, s.PlayerOnGround())
	assert.Equal(t, world.StatusNone, s.Status())
}

func TestPlayerStopsAgainstWall(t *testing.T) {
	s := newScene(t, []string{
		"      ",
		"@   x ",
		"xxxxxx",
	}, LevelOptions{})
	s.SetInput(hold(cfg.ActionMoveRight))
	run(t, s, 60)

	assert.InDelta(t, 4.0, s.Level().Player.Right(), 1e-6)
	assert.Equal(t, world.StatusNone, s.Status())
}

func TestPlayerJumps(t *testing.T) {
	s := newScene(t, []string{
		"   ",
		"   ",
		"   ",
		" @ ",
		"xxx",
	}, LevelOptions{})
	p := s.Level().Player
	startY := p.Pos.Y

	s.SetInput(hold(cfg.ActionJump))
	require.NoError(t, s.Update(tick))
	assert.Equal(t, -cfg.Player.JumpSpeed, p.Speed.Y)
	require.NoError(t, s.Update(tick))
	assert.Less(t, p.Pos.Y, startY)
}

func TestCollectingLastCoinWins(t *testing.T) {
	s := newScene(t, []string{
		" ",
		"@o",
		"xx",
	}, LevelOptions{})
	s.SetInput(hold(cfg.ActionMoveRight))
	run(t, s, 300)

	assert.Equal(t, world.StatusWon, s.Status())
	assert.True(t, s.Finished())
	assert.True(t, s.Level().NoMoreActors(actor.KindCoin))
}

func TestWonPlayerKeepsMoving(t *testing.T) {
	s := newScene(t, []string{
		"      ",
		"@o    ",
		"xxxxxx",
	}, LevelOptions{})
	s.SetInput(hold(cfg.ActionMoveRight))
	for i := 0; i < 60 && s.Status() == world.StatusNone; i++ {
		require.NoError(t, s.Update(tick))
	}
	require.Equal(t, world.StatusWon, s.Status())

	x := s.Level().Player.Pos.X
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Update(tick))
	}
	assert.False(t, s.Finished())
	assert.Greater(t, s.Level().Player.Pos.X, x)
}

func TestLavaLoses(t *testing.T) {
	s := newScene(t, []string{
		"   ",
		" @ ",
		"   ",
		"!!!",
	}, LevelOptions{})
	run(t, s, 300)

	assert.Equal(t, world.StatusLost, s.Status())
	assert.True(t, s.Finished())
}

func TestFireballLoses(t *testing.T) {
	s := newScene(t, []string{
		"   ",
		"@ =",
		"xxx",
	}, LevelOptions{})
	run(t, s, 300)

	assert.Equal(t, world.StatusLost, s.Status())
	assert.True(t, s.Finished())
}

func TestBotCollectsCoin(t *testing.T) {
	s := newScene(t, []string{
		"     ",
		"@  o ",
		"xxxxx",
	}, LevelOptions{Bot: true})
	run(t, s, 600)

	assert.Equal(t, world.StatusWon, s.Status())
}

func TestUpdateSplitsLongSteps(t *testing.T) {
	s := newScene(t, []string{
		"  ",
		"@ ",
		"xx",
	}, LevelOptions{Name: "split"})
	require.NoError(t, s.Update(0.12))

	clock := s.Clock()
	assert.Equal(t, 3, clock.Ticks)
	assert.InDelta(t, 0.12, clock.Elapsed, 1e-9)
	assert.Equal(t, "split", s.Options().Name)
}

func TestFinishedLevelStopsStepping(t *testing.T) {
	s := newScene(t, []string{
		"   ",
		" @ ",
		"   ",
		"!!!",
	}, LevelOptions{})
	run(t, s, 300)
	require.True(t, s.Finished())

	ticks := s.Clock().Ticks
	pos := s.Level().Player.Pos
	require.NoError(t, s.Update(1))
	assert.Equal(t, ticks, s.Clock().Ticks)
	assert.Equal(t, pos, s.Level().Player.Pos)
}

func TestLevelWithoutPlayer(t *testing.T) {
	s := newScene(t, []string{
		"o ",
		"xx",
	}, LevelOptions{Bot: true})
	require.NoError(t, s.Update(tick))
	assert.Nil(t, s.Level().Player)
	assert.False(t, s.PlayerOnGround())
}
