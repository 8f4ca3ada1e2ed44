package config

// BotConfigData holds tuning values for the headless autopilot
type BotConfigData struct {
	ArriveDistance float64 // Horizontal tiles at which the bot stops steering toward a target
	JumpLookAhead  float64 // Tiles ahead checked for a wall or lava before jumping
	JumpHeight     float64 // Targets higher than this above the player trigger a jump
	Seed           int64   // Coin phase seed for headless runs (0 = time based)
}

// Bot holds bot configuration
var Bot BotConfigData

func defaultBot() BotConfigData {
	return BotConfigData{
		ArriveDistance: 0.2,
		JumpLookAhead:  0.6,
		JumpHeight:     0.75,
		Seed:           0,
	}
}
