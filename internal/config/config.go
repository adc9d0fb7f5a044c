// Package config loads runtime settings from the environment.
//
// Variables (all optional):
//
//	LOG_LEVEL            zerolog level name (default "warn")
//	WORDS_USED_FILE      answer list overriding the embedded one
//	WORDS_EXTRA_FILE     guess-only list overriding the embedded one
//	WORDLE_COLOR         auto | always | never (default "auto")
//	WORDLE_HISTORY_FILE  readline history file (default: no history)
//	DAILY_SALT           salt for the daily answer (default "local_dev_salt")
//
// main loads a .env file first, so any of these may live there.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel       string `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	UsedWordsFile  string `validate:"omitempty,file"`
	ExtraWordsFile string `validate:"omitempty,file"`
	Color          string `validate:"required,oneof=auto always never"`
	HistoryFile    string
	DailySalt      string `validate:"required"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
		UsedWordsFile:  os.Getenv("WORDS_USED_FILE"),
		ExtraWordsFile: os.Getenv("WORDS_EXTRA_FILE"),
		Color:          getEnv("WORDLE_COLOR", ColorAuto),
		HistoryFile:    os.Getenv("WORDLE_HISTORY_FILE"),
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values against their tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
