package scenes

import (
	"math"
	"sync"

	"github.com/automoto/lavarun/components"
	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/shared/world"
	"github.com/automoto/lavarun/systems"
	"github.com/automoto/lavarun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelOptions describes where a level sits in a game.
type LevelOptions struct {
	Index   int
	Name    string
	Attempt int
	Bot     bool // drive the player with the autopilot instead of SetInput
}

// LevelScene runs one level through the ECS. Update is called from one
// goroutine; SetInput may be called from another.
type LevelScene struct {
	ecs  *ecs.ECS
	opts LevelOptions
	once sync.Once

	level *world.Level

	mu    sync.Mutex
	input [cfg.ActionCount]bool
}

// NewLevelScene creates a scene for lvl. The ECS is built on first use.
func NewLevelScene(lvl *world.Level, opts LevelOptions) *LevelScene {
	return &LevelScene{level: lvl, opts: opts}
}

// Update advances the level by step seconds, split into sub-steps no
// longer than config.Sim.MaxStep. It returns the first error a system hit.
func (ls *LevelScene) Update(step float64) error {
	ls.once.Do(ls.configure)

	maxStep := cfg.Sim.MaxStep
	if maxStep <= 0 {
		maxStep = step
	}
	for step > 0 && !systems.IsLevelDone(ls.ecs) {
		thisStep := math.Min(step, maxStep)
		systems.StartTick(ls.ecs, thisStep)
		ls.ecs.Update()
		step -= thisStep
	}
	return ls.Err()
}

// SetInput replaces the actions held for the following ticks.
func (ls *LevelScene) SetInput(pressed [cfg.ActionCount]bool) {
	ls.mu.Lock()
	ls.input = pressed
	ls.mu.Unlock()
}

func (ls *LevelScene) heldInput() [cfg.ActionCount]bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.input
}

// Level returns the level being played.
func (ls *LevelScene) Level() *world.Level {
	return ls.level
}

// Options returns the options the scene was created with.
func (ls *LevelScene) Options() LevelOptions {
	return ls.opts
}

// Finished reports whether the level is decided and its finish delay ran out.
func (ls *LevelScene) Finished() bool {
	return ls.level.IsFinished()
}

// Status returns the level outcome so far.
func (ls *LevelScene) Status() world.Status {
	return ls.level.Status
}

// Err returns the error that stopped the scene, if any.
func (ls *LevelScene) Err() error {
	ls.once.Do(ls.configure)
	if data := systems.GetLevel(ls.ecs); data != nil {
		return data.Err
	}
	return nil
}

// Clock returns the scene's tick clock.
func (ls *LevelScene) Clock() components.ClockData {
	ls.once.Do(ls.configure)
	return systems.Clock(ls.ecs)
}

// PlayerOnGround reports whether the player stood on something last tick.
func (ls *LevelScene) PlayerOnGround() bool {
	ls.once.Do(ls.configure)
	entry, ok := components.Player.First(ls.ecs.World)
	if !ok {
		return false
	}
	return components.Player.Get(entry).OnGround
}

func (ls *LevelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input comes first so the bot can override it
	e.AddSystem(func(e *ecs.ECS) { systems.ApplyInput(e, ls.heldInput()) })
	e.AddSystem(systems.UpdateBot)

	// Simulation systems stop once the level is finished
	e.AddSystem(systems.WithLevelCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithLevelCheck(systems.UpdateActors))
	e.AddSystem(systems.WithLevelCheck(systems.UpdateContacts))
	e.AddSystem(systems.WithLevelCheck(systems.UpdateFinish))

	ls.ecs = e

	// Create the level entity FIRST, then the space sized from it.
	factory.CreateLevel(ls.ecs, ls.level, ls.opts.Index, ls.opts.Name, ls.opts.Attempt)
	factory.CreateSpace(ls.ecs, ls.level)
	factory.CreateTerrain(ls.ecs, ls.level)

	if ls.level.Player != nil {
		factory.CreatePlayerBody(ls.ecs, ls.level.Player)
	}
	if ls.opts.Bot {
		factory.CreateBot(ls.ecs)
	}
}
