// Package config reads CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Config holds settings that flags may override.
type Config struct {
	// Renderer names the default renderer. ENV: FORMBIND_RENDERER
	Renderer string `env:"FORMBIND_RENDERER,default=text"`
	// LogLevel is one of debug, info, warn, error. ENV: FORMBIND_LOG_LEVEL
	LogLevel string `env:"FORMBIND_LOG_LEVEL,default=warn"`
	// LogFile receives JSON logs in addition to stderr. ENV: FORMBIND_LOG_FILE
	LogFile string `env:"FORMBIND_LOG_FILE"`
	// NameMaxLength bounds the profile name. ENV: FORMBIND_NAME_MAX_LENGTH
	NameMaxLength int `env:"FORMBIND_NAME_MAX_LENGTH,default=30"`
}

// Load decodes Config from the environment, applying tag defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.NameMaxLength < 0 {
		return Config{}, fmt.Errorf("config: FORMBIND_NAME_MAX_LENGTH must not be negative, got %d", cfg.NameMaxLength)
	}
	return cfg, nil
}

// Level parses LogLevel. Unknown values fall back to warn.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return level
}
