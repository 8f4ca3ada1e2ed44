package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/logger"
	"github.com/automoto/lavarun/scenes"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/leveldata"
	"github.com/automoto/lavarun/shared/world"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoLevels  = errors.New("no levels to play")
	ErrTickLimit = errors.New("tick limit reached")
)

// GameOptions configures a Game. Zero values pick defaults.
type GameOptions struct {
	Dictionary actor.Dictionary // nil = actor.DefaultDictionary()
	Rand       *rand.Rand       // coin phases; nil = time seeded
	Bot        bool
	MaxTicks   int // 0 = unlimited
}

// Outcome records how one attempt at a level ended.
type Outcome struct {
	Level   string
	Index   int
	Attempt int
	Status  world.Status
	Ticks   int
}

// Game plays a sequence of levels. A won level advances to the next one; a
// lost level is restarted. The game is complete after the last level is won.
type Game struct {
	ID ulid.ULID

	mu      sync.Mutex
	plans   []leveldata.NamedPlan
	parser  *leveldata.LevelParser
	opts    GameOptions
	input   [cfg.ActionCount]bool
	index   int
	attempt int
	scene   *scenes.LevelScene
	ticks   int
	done    bool
	results []Outcome
	log     *logrus.Entry
}

func NewGame(plans []leveldata.NamedPlan, opts GameOptions) (*Game, error) {
	if len(plans) == 0 {
		return nil, ErrNoLevels
	}
	dict := opts.Dictionary
	if dict == nil {
		dict = actor.DefaultDictionary()
	}

	g := &Game{
		ID:     ulid.Make(),
		plans:  append([]leveldata.NamedPlan(nil), plans...),
		parser: leveldata.NewLevelParser(dict, opts.Rand),
		opts:   opts,
	}
	g.log = logger.Log.WithFields(logrus.Fields{"game_id": g.ID.String()})
	g.startLevel(0)
	return g, nil
}

func (g *Game) startLevel(index int) {
	if index != g.index || g.scene == nil {
		g.attempt = 0
	}
	g.index = index
	g.attempt++

	plan := g.plans[index]
	g.scene = scenes.NewLevelScene(g.parser.Parse(plan.Plan), scenes.LevelOptions{
		Index:   index,
		Name:    plan.Name,
		Attempt: g.attempt,
		Bot:     g.opts.Bot,
	})
	g.scene.SetInput(g.input)

	g.log.WithFields(logrus.Fields{
		"level":   plan.Name,
		"index":   index,
		"attempt": g.attempt,
	}).Info("level started")
}

// Step advances the current level by step seconds and moves on when it
// finishes.
func (g *Game) Step(step float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done {
		return nil
	}
	if g.opts.MaxTicks > 0 && g.ticks >= g.opts.MaxTicks {
		return ErrTickLimit
	}
	g.ticks++

	if err := g.scene.Update(step); err != nil {
		return fmt.Errorf("level %s: %w", g.plans[g.index].Name, err)
	}
	if !g.scene.Finished() {
		return nil
	}

	status := g.scene.Status()
	g.results = append(g.results, Outcome{
		Level:   g.plans[g.index].Name,
		Index:   g.index,
		Attempt: g.attempt,
		Status:  status,
		Ticks:   g.scene.Clock().Ticks,
	})
	g.log.WithFields(logrus.Fields{
		"level":   g.plans[g.index].Name,
		"attempt": g.attempt,
		"status":  status.String(),
	}).Info("level finished")

	switch {
	case status == world.StatusLost:
		g.startLevel(g.index)
	case g.index+1 < len(g.plans):
		g.startLevel(g.index + 1)
	default:
		g.done = true
		g.log.WithFields(logrus.Fields{"levels": len(g.plans), "ticks": g.ticks}).Info("game complete")
	}
	return nil
}

// Run steps the game until it is complete. With realtime set it ticks at
// tickRate through a GameLoop; otherwise it steps as fast as possible.
func (g *Game) Run(ctx context.Context, tickRate int, realtime bool) error {
	if !realtime {
		step := cfg.Sim.Step()
		if tickRate > 0 {
			step = 1 / float64(tickRate)
		}
		for !g.Done() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.Step(step); err != nil {
				return err
			}
		}
		return nil
	}

	var runErr error
	loop := NewGameLoop(tickRate, func(step float64) bool {
		if err := g.Step(step); err != nil {
			runErr = err
			return false
		}
		return !g.Done()
	})
	loop.Run(ctx)

	if runErr != nil {
		return runErr
	}
	if !g.Done() {
		return ctx.Err()
	}
	return nil
}

// SetInput holds actions for the current and every following level.
func (g *Game) SetInput(pressed [cfg.ActionCount]bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.input = pressed
	g.scene.SetInput(pressed)
}

// Reload swaps in a new level set and restarts from its first level.
func (g *Game) Reload(plans []leveldata.NamedPlan) error {
	if len(plans) == 0 {
		return ErrNoLevels
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.plans = append([]leveldata.NamedPlan(nil), plans...)
	g.done = false
	g.scene = nil
	g.log.WithFields(logrus.Fields{"levels": len(plans)}).Info("levels reloaded")
	g.startLevel(0)
	return nil
}

// Scene returns the scene of the level being played.
func (g *Game) Scene() *scenes.LevelScene {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scene
}

// Level returns the index and name of the level being played.
func (g *Game) Level() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.index, g.plans[g.index].Name
}

// LevelCount returns the number of levels in the game.
func (g *Game) LevelCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.plans)
}

// Done reports whether every level has been won.
func (g *Game) Done() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.done
}

// Ticks returns the number of steps taken.
func (g *Game) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

// Results returns the outcome of every finished attempt, oldest first.
func (g *Game) Results() []Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Outcome(nil), g.results...)
}
