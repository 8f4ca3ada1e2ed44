package config

// SimConfig contains tick driver configuration
type SimConfig struct {
	TickRate    int     // Updates per second
	MaxStep     float64 // Seconds; longer frame gaps are clamped to this
	FinishDelay float64 // Seconds a won/lost level keeps running before it counts as finished
	TileSize    float64 // Collision space units per tile
	MaxTicks    int     // Headless safety cap per game, ten minutes at 60/s (0 = unlimited)
}

// PlayerConfig contains the input-driven player controller values.
// Units are tiles and seconds.
type PlayerConfig struct {
	Speed        float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64
}

// TerminalConfig contains terminal client configuration
type TerminalConfig struct {
	FrameRate    int     // Redraws per second
	BannerTime   float64 // Seconds for the won/lost banner to slide in
	StatusHeight int     // Rows reserved under the level for status text
}

// Global configuration instances
var Sim SimConfig
var Player PlayerConfig
var Terminal TerminalConfig

// Symbols maps level plan characters to actor variant names. The variant
// names are the ones accepted by actor.FactoryByName.
var Symbols map[string]string

func init() {
	Reset()
}

// Reset restores every global to its default. Tests that load overrides
// call it in cleanup.
func Reset() {
	Sim = SimConfig{
		TickRate:    60,
		MaxStep:     0.05,
		FinishDelay: 1,
		TileSize:    16,
		MaxTicks:    36000,
	}

	Player = PlayerConfig{
		Speed:        7,
		JumpSpeed:    17,
		Gravity:      30,
		MaxFallSpeed: 20,
	}

	Terminal = TerminalConfig{
		FrameRate:    30,
		BannerTime:   0.6,
		StatusHeight: 2,
	}

	Symbols = map[string]string{
		"@": "player",
		"=": "horizontal-fireball",
		"|": "vertical-fireball",
		"v": "fire-rain",
		"o": "coin",
	}

	Input = defaultInput()
	Bot = defaultBot()
}

// Step returns the fixed simulation step for the configured tick rate,
// clamped to MaxStep.
func (s SimConfig) Step() float64 {
	if s.TickRate <= 0 {
		return s.MaxStep
	}
	step := 1 / float64(s.TickRate)
	if s.MaxStep > 0 && step > s.MaxStep {
		return s.MaxStep
	}
	return step
}
