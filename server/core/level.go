package core

import (
	"context"
	"fmt"
	"os"

	"github.com/automoto/lavarun/levels"
	"github.com/automoto/lavarun/logger"
	"github.com/automoto/lavarun/shared/leveldata"
	"github.com/sirupsen/logrus"
)

// LoadLevelSet loads every .json and .tmx level in dir, or the embedded
// set when dir is empty.
func LoadLevelSet(dir string) ([]leveldata.NamedPlan, error) {
	var (
		plans []leveldata.NamedPlan
		err   error
	)
	if dir == "" {
		plans, err = levels.Default()
	} else {
		plans, err = leveldata.LoadAllLevels(os.DirFS(dir), ".")
	}
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"dir": dir, "levels": len(plans)}).Info("loaded levels")
	return plans, nil
}

// WatchLevels reloads g from dir whenever a level file there changes, until
// ctx is done. A set that fails to load is logged and skipped.
func WatchLevels(ctx context.Context, dir string, g *Game) error {
	w, err := leveldata.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-w.Events:
			if !ok {
				return nil
			}
			plans, err := LoadLevelSet(dir)
			if err != nil {
				logger.Log.WithError(err).WithField("file", name).Warn("level reload failed")
				continue
			}
			if err := g.Reload(plans); err != nil {
				logger.Log.WithError(err).Warn("level reload rejected")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Log.WithError(err).Warn("level watcher error")
		}
	}
}
