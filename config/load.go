package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout. Sections decode on top of the current
// globals, so keys missing from the file keep their values.
type fileConfig struct {
	Sim struct {
		TickRate    int     `yaml:"tick_rate"`
		MaxStep     float64 `yaml:"max_step"`
		FinishDelay float64 `yaml:"finish_delay"`
		TileSize    float64 `yaml:"tile_size"`
		MaxTicks    int     `yaml:"max_ticks"`
	} `yaml:"sim"`
	Player struct {
		Speed        float64 `yaml:"speed"`
		JumpSpeed    float64 `yaml:"jump_speed"`
		Gravity      float64 `yaml:"gravity"`
		MaxFallSpeed float64 `yaml:"max_fall_speed"`
	} `yaml:"player"`
	Terminal struct {
		FrameRate    int     `yaml:"frame_rate"`
		BannerTime   float64 `yaml:"banner_time"`
		StatusHeight int     `yaml:"status_height"`
	} `yaml:"terminal"`
	Bot struct {
		ArriveDistance float64 `yaml:"arrive_distance"`
		JumpLookAhead  float64 `yaml:"jump_look_ahead"`
		JumpHeight     float64 `yaml:"jump_height"`
		Seed           int64   `yaml:"seed"`
	} `yaml:"bot"`
	// A symbol mapped to "" removes it from the dictionary.
	Symbols map[string]string `yaml:"symbols"`
}

// LoadFile overlays the YAML document at path onto the globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Load overlays a YAML document onto the globals. Nothing is applied when
// the document fails to decode or validate.
func Load(data []byte) error {
	var fc fileConfig
	fc.Sim.TickRate = Sim.TickRate
	fc.Sim.MaxStep = Sim.MaxStep
	fc.Sim.FinishDelay = Sim.FinishDelay
	fc.Sim.TileSize = Sim.TileSize
	fc.Sim.MaxTicks = Sim.MaxTicks
	fc.Player.Speed = Player.Speed
	fc.Player.JumpSpeed = Player.JumpSpeed
	fc.Player.Gravity = Player.Gravity
	fc.Player.MaxFallSpeed = Player.MaxFallSpeed
	fc.Terminal.FrameRate = Terminal.FrameRate
	fc.Terminal.BannerTime = Terminal.BannerTime
	fc.Terminal.StatusHeight = Terminal.StatusHeight
	fc.Bot.ArriveDistance = Bot.ArriveDistance
	fc.Bot.JumpLookAhead = Bot.JumpLookAhead
	fc.Bot.JumpHeight = Bot.JumpHeight
	fc.Bot.Seed = Bot.Seed

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	for sym := range fc.Symbols {
		if len([]rune(sym)) != 1 {
			return fmt.Errorf("symbol %q must be a single character", sym)
		}
	}
	if fc.Sim.TickRate <= 0 {
		return fmt.Errorf("sim.tick_rate must be positive, got %d", fc.Sim.TickRate)
	}
	if fc.Sim.TileSize <= 0 {
		return fmt.Errorf("sim.tile_size must be positive, got %v", fc.Sim.TileSize)
	}

	Sim = SimConfig{
		TickRate:    fc.Sim.TickRate,
		MaxStep:     fc.Sim.MaxStep,
		FinishDelay: fc.Sim.FinishDelay,
		TileSize:    fc.Sim.TileSize,
		MaxTicks:    fc.Sim.MaxTicks,
	}
	Player = PlayerConfig{
		Speed:        fc.Player.Speed,
		JumpSpeed:    fc.Player.JumpSpeed,
		Gravity:      fc.Player.Gravity,
		MaxFallSpeed: fc.Player.MaxFallSpeed,
	}
	Terminal = TerminalConfig{
		FrameRate:    fc.Terminal.FrameRate,
		BannerTime:   fc.Terminal.BannerTime,
		StatusHeight: fc.Terminal.StatusHeight,
	}
	Bot = BotConfigData{
		ArriveDistance: fc.Bot.ArriveDistance,
		JumpLookAhead:  fc.Bot.JumpLookAhead,
		JumpHeight:     fc.Bot.JumpHeight,
		Seed:           fc.Bot.Seed,
	}

	for sym, name := range fc.Symbols {
		if name == "" {
			delete(Symbols, sym)
			continue
		}
		Symbols[sym] = name
	}
	return nil
}
