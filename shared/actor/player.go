package actor

import "github.com/automoto/lavarun/shared/gamemath"

var (
	// PlayerOffset raises the hitbox so a 1.5 tall body stands on the spawn tile.
	PlayerOffset = gamemath.Vec(0, -0.5)
	PlayerSize   = gamemath.Vec(0.8, 1.5)
)

// NewPlayer creates the player for the tile at pos. The player has no
// autonomous motion; the driver moves it.
func NewPlayer(pos gamemath.Vector) (*Actor, error) {
	return newActor(VariantPlayer, pos.Plus(PlayerOffset), PlayerSize, gamemath.Vector{})
}
