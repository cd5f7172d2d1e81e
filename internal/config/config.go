// Package config holds runtime settings for the scoundrel CLI.
// Settings come from the environment (SCOUNDREL_* variables) and are
// overridden by command line flags in main.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration of one game session.
type Config struct {
	// Seed drives the deck shuffle. 0 means pick a random seed.
	Seed int64 `env:"SCOUNDREL_SEED"`

	// StartingHealth is the player's health and health cap.
	StartingHealth int `env:"SCOUNDREL_STARTING_HEALTH" envDefault:"20"`

	// DungeonPath points to a custom dungeon YAML file. Empty means
	// the embedded standard dungeon.
	DungeonPath string `env:"SCOUNDREL_DUNGEON"`

	// AgentName selects a built-in agent for automated play. Empty
	// means interactive play.
	AgentName string `env:"SCOUNDREL_AGENT"`

	// Headless skips all rendering. Requires an agent.
	Headless bool `env:"SCOUNDREL_HEADLESS"`

	// NoTitle skips the title screen in interactive play.
	NoTitle bool `env:"SCOUNDREL_NO_TITLE"`

	// LogFile is the JSONL event log path. Empty disables the log.
	LogFile string `env:"SCOUNDREL_LOG_FILE"`

	// LogConsole echoes events to stdout as text.
	LogConsole bool `env:"SCOUNDREL_LOG_CONSOLE"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Headless && c.AgentName == "" {
		return fmt.Errorf("headless mode requires an agent")
	}
	if c.StartingHealth <= 0 {
		return fmt.Errorf("starting health must be positive, got %d", c.StartingHealth)
	}
	return nil
}
