package components

import (
	"github.com/automoto/lavarun/shared/world"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level   *world.Level
	Index   int
	Name    string
	Attempt int

	// Err is the first error a system hit while advancing the level. The
	// scene stops stepping once it is set.
	Err error
}

var Level = donburi.NewComponentType[LevelData]()
