package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/lavarun/config"
	"github.com/automoto/lavarun/logger"
	"github.com/automoto/lavarun/server/core"
	"github.com/automoto/lavarun/shared/actor"
	"github.com/automoto/lavarun/shared/world"
	"github.com/sirupsen/logrus"
)

func main() {
	levelsDir := flag.String("levels", "", "Level directory (empty = built-in levels)")
	configPath := flag.String("config", "", "YAML config overrides")
	tickRate := flag.Int("tickrate", 0, "Simulation tick rate (0 = config)")
	maxTicks := flag.Int("maxticks", -1, "Stop after this many ticks (-1 = config, 0 = unlimited)")
	watch := flag.Bool("watch", false, "Reload the level set when files in -levels change")
	realtime := flag.Bool("realtime", false, "Tick at wall-clock rate instead of as fast as possible")
	flag.Parse()

	logger.Init(os.Stdout)
	log := logger.Log

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}
	if *tickRate <= 0 {
		*tickRate = cfg.Sim.TickRate
	}
	if *maxTicks < 0 {
		*maxTicks = cfg.Sim.MaxTicks
	}

	dict, err := actor.DictionaryFromSymbols(cfg.Symbols)
	if err != nil {
		log.WithError(err).Fatal("invalid symbols")
	}

	plans, err := core.LoadLevelSet(*levelsDir)
	if err != nil {
		log.WithError(err).Fatal("failed to load levels")
	}

	seed := cfg.Bot.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := core.NewGame(plans, core.GameOptions{
		Dictionary: dict,
		Rand:       rand.New(rand.NewSource(seed)),
		Bot:        true,
		MaxTicks:   *maxTicks,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to start game")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watch && *levelsDir != "" {
		go func() {
			if err := core.WatchLevels(ctx, *levelsDir, game); err != nil {
				log.WithError(err).Error("level watcher stopped")
			}
		}()
	}

	log.WithFields(logrus.Fields{
		"game_id":   game.ID.String(),
		"levels":    len(plans),
		"tick_rate": *tickRate,
		"realtime":  *realtime,
		"seed":      seed,
	}).Info("starting headless game")

	runErr := game.Run(ctx, *tickRate, *realtime)

	won, lost := 0, 0
	for _, r := range game.Results() {
		if r.Status == world.StatusWon {
			won++
		} else {
			lost++
		}
	}
	fields := logrus.Fields{"ticks": game.Ticks(), "won": won, "lost": lost, "complete": game.Done()}
	if runErr != nil {
		log.WithFields(fields).WithError(runErr).Error("game stopped")
		os.Exit(1)
	}
	log.WithFields(fields).Info("game over")
}
