package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig holds the tunable rules and pacing settings for Hearts matches.
// Instances are constructed explicitly and passed to whoever needs them; the
// package keeps no global state.
type GameConfig struct {
	// EndScore finishes the game once any player's cumulative score
	// reaches it. Must be a positive integer.
	EndScore int `json:"end_score"`

	TurnDurationSeconds int `json:"turn_duration_seconds"`

	BotsEnabled bool `json:"bots_enabled"`
	// BotMinDelaySeconds/BotMaxDelaySeconds bound how long a bot waits
	// before acting on its turn.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds is how long a solo human waits before the
	// remaining seats are filled with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

// Default returns the configuration used when no file is provided.
func Default() *GameConfig {
	return &GameConfig{
		EndScore:                100,
		TurnDurationSeconds:     30,
		BotsEnabled:             true,
		BotMinDelaySeconds:      1,
		BotMaxDelaySeconds:      3,
		BotAutoFillDelaySeconds: 5,
	}
}

// Load reads and validates the game configuration from the given path.
// Invalid configuration aborts startup; it is never silently defaulted.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants the rest of the system relies on.
func (c *GameConfig) Validate() error {
	if c.EndScore <= 0 {
		return fmt.Errorf("end_score must be a positive integer, got %d", c.EndScore)
	}
	if c.TurnDurationSeconds < 0 {
		return fmt.Errorf("turn_duration_seconds must not be negative, got %d", c.TurnDurationSeconds)
	}
	if c.BotMinDelaySeconds < 0 || c.BotMaxDelaySeconds < c.BotMinDelaySeconds {
		return fmt.Errorf("bot delays are inconsistent: min=%d max=%d", c.BotMinDelaySeconds, c.BotMaxDelaySeconds)
	}
	return nil
}
