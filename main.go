package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/logger"
	"github.com/automoto/lavarun/render"
	"github.com/automoto/lavarun/server/core"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// maxFrameGap caps the time one frame may advance the game, so a stalled
// terminal does not fast-forward the level.
const maxFrameGap = 0.1

type Game struct {
	screen tcell.Screen
	term   *render.Terminal
	game   *core.Game
	keys   render.Keys
}

func NewGame(game *core.Game) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Game{
		screen: screen,
		term:   render.NewTerminal(screen),
		game:   game,
	}, nil
}

func (g *Game) Close() {
	g.screen.Fini()
}

// handleInput returns false when the player quits.
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if g.keys.Handle(ev, now) == cfg.ActionQuit {
			return false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) frame(dt float64, now time.Time) error {
	g.game.SetInput(g.keys.Pressed(now))
	if err := g.game.Step(math.Min(dt, maxFrameGap)); err != nil {
		return err
	}
	if g.game.Done() {
		g.term.DrawMessage("You completed every level! Press q to quit.")
		return nil
	}

	scene := g.game.Scene()
	opts := scene.Options()
	g.term.Draw(scene.Level(), render.Status{
		Level:   opts.Name,
		Index:   opts.Index,
		Count:   g.game.LevelCount(),
		Attempt: opts.Attempt,
		Elapsed: scene.Clock().Elapsed,
	}, dt)
	return nil
}

func (g *Game) run() error {
	frameRate := cfg.Terminal.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.frame(dt, now); err != nil {
				return err
			}
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML config overrides")
	levelsDir := flag.String("levels", "", "Level directory (empty = built-in levels)")
	logPath := flag.String("log", "", "Write logs to this file (default: discard)")
	seed := flag.Int64("seed", 0, "Coin phase seed (0 = time based)")
	flag.Parse()

	logger.Init(os.Stderr)
	log := logger.Log
	var logFile *os.File
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.WithError(err).Fatal("failed to open log file")
		}
		logFile = f
		log.SetOutput(f)
	} else {
		// Anything written to the terminal would corrupt the screen.
		logger.Discard()
	}

	// exit closes the log file, which deferred calls would skip.
	exit := func(code int) {
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(code)
	}
	fatal := func(err error, msg string) {
		log.WithError(err).Error(msg)
		if logFile == nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		}
		exit(1)
	}

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fatal(err, "failed to load config")
		}
	}

	dict, err := actor.DictionaryFromSymbols(cfg.Symbols)
	if err != nil {
		fatal(err, "invalid symbols")
	}
	plans, err := core.LoadLevelSet(*levelsDir)
	if err != nil {
		fatal(err, "failed to load levels")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	game, err := core.NewGame(plans, core.GameOptions{
		Dictionary: dict,
		Rand:       rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		fatal(err, "failed to start game")
	}

	g, err := NewGame(game)
	if err != nil {
		fatal(err, "failed to open terminal")
	}
	runErr := g.run()
	g.Close()

	if runErr != nil {
		fatal(runErr, "game stopped")
	}
	log.WithFields(logrus.Fields{"game_id": game.ID.String(), "complete": game.Done()}).Info("bye")
	exit(0)
}
