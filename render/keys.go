package render

import (
	"time"

	cfg "github.com/automoto/lavarun/config"
	"github.com/gdamore/tcell/v2"
)

// Keys turns terminal key presses into held actions. Terminals report no
// key releases, so a press holds its action for config.Input.HoldTime and
// key repeat keeps it held.
type Keys struct {
	until [cfg.ActionCount]time.Time
}

// Handle records a key event and returns the action it maps to.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Time) cfg.ActionID {
	action := cfg.Input.ActionFor(ev.Key(), ev.Rune())
	if action != cfg.ActionNone {
		k.until[action] = now.Add(time.Duration(cfg.Input.HoldTime * float64(time.Second)))
	}
	return action
}

// Pressed returns the actions held at now.
func (k *Keys) Pressed(now time.Time) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for action, until := range k.until {
		pressed[action] = now.Before(until)
	}
	return pressed
}
