package config

import "github.com/gdamore/tcell/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and runes bound to one action
type InputBinding struct {
	Keys  []tcell.Key
	Runes []rune
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Terminals report key presses but not releases, so a press counts as
	// held for this many seconds.
	HoldTime float64
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		HoldTime: 0.15,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:  []tcell.Key{tcell.KeyLeft},
				Runes: []rune{'a', 'h'},
			},
			ActionMoveRight: {
				Keys:  []tcell.Key{tcell.KeyRight},
				Runes: []rune{'d', 'l'},
			},
			ActionJump: {
				Keys:  []tcell.Key{tcell.KeyUp},
				Runes: []rune{' ', 'w', 'k'},
			},
			ActionQuit: {
				Keys:  []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC},
				Runes: []rune{'q'},
			},
		},
	}
}

// ActionFor resolves a key event to its bound action.
func (c InputConfig) ActionFor(key tcell.Key, r rune) ActionID {
	for action, binding := range c.Bindings {
		if key == tcell.KeyRune {
			for _, br := range binding.Runes {
				if br == r {
					return action
				}
			}
			continue
		}
		for _, bk := range binding.Keys {
			if bk == key {
				return action
			}
		}
	}
	return ActionNone
}
