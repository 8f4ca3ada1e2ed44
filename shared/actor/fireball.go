package actor

import "github.com/automoto/lavarun/shared/gamemath"

// Fixed launch speeds, tiles per second.
var (
	HorizontalFireballSpeed = gamemath.Vec(2, 0)
	VerticalFireballSpeed   = gamemath.Vec(0, 2)
	FireRainSpeed           = gamemath.Vec(0, 3)
)

// NewFireball creates a one-tile fireball travelling at speed and bouncing
// back along its axis when blocked.
func NewFireball(pos, speed gamemath.Vector) (*Actor, error) {
	return newActor(VariantFireball, pos, DefaultSize, speed)
}

// NewHorizontalFireball creates a fireball bouncing left and right.
func NewHorizontalFireball(pos gamemath.Vector) (*Actor, error) {
	return newActor(VariantHorizontalFireball, pos, DefaultSize, HorizontalFireballSpeed)
}

// NewVerticalFireball creates a fireball bouncing up and down.
func NewVerticalFireball(pos gamemath.Vector) (*Actor, error) {
	return newActor(VariantVerticalFireball, pos, DefaultSize, VerticalFireballSpeed)
}

// NewFireRain creates fire that falls from pos and restarts there whenever
// it lands on something.
func NewFireRain(pos gamemath.Vector) (*Actor, error) {
	return newActor(VariantFireRain, pos, DefaultSize, FireRainSpeed)
}

// NextPosition returns where the actor would be after step seconds of
// linear motion.
func (a *Actor) NextPosition(step float64) gamemath.Vector {
	return a.Pos.Plus(a.Speed.Times(step))
}

func actFireball(a *Actor, step float64, terrain Terrain) error {
	next := a.NextPosition(step)
	blocked, err := terrain.Blocked(next, a.Size)
	if err != nil {
		return err
	}
	if blocked {
		a.HandleObstacle()
		return nil
	}
	a.Pos = next
	return nil
}

func reverseSpeed(a *Actor) {
	a.Speed = a.Speed.Times(-1)
}

func returnToStart(a *Actor) {
	a.Pos = a.start
}
