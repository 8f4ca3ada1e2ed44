package core

import (
	"context"
	"sync"
	"time"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/logger"
	"github.com/sirupsen/logrus"
)

// TickFunc advances the simulation by step seconds. Returning false stops
// the loop.
type TickFunc func(step float64) bool

type GameLoop struct {
	tick     TickFunc
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(tickRate int, tick TickFunc) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Sim.TickRate
	}
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Step returns the fixed step handed to the tick function.
func (g *GameLoop) Step() float64 {
	return 1 / float64(g.tickRate)
}

// Run ticks at the loop's rate until Stop, ctx is done, or the tick
// function returns false. The tick function runs on the caller's goroutine.
func (g *GameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{"tick_rate": g.tickRate}).Info("game loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("game loop cancelled")
			return
		case <-g.stopChan:
			logger.Log.Info("game loop stopped")
			return
		case <-ticker.C:
			if !g.tick(g.Step()) {
				logger.Log.Debug("game loop finished")
				return
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
