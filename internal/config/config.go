// Package config provides YAML-based configuration loading for colorx.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorx/internal/color"
)

// Config contains all colorx settings.
type Config struct {
	Output  string        `yaml:"output"` // Default target notation: hex, rgba or percent
	Log     LogConfig     `yaml:"log"`
	History HistoryConfig `yaml:"history"`
	Serve   ServeConfig   `yaml:"serve"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// HistoryConfig controls the conversion history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
	Limit   int    `yaml:"limit"` // Rows shown by "colorx history"
}

// ServeConfig defines SSH server parameters.
type ServeConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // Auto-generated at ~/.colorx/host_key when empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// OutputNotation resolves the configured default target notation.
func (c Config) OutputNotation() (color.Notation, error) {
	return color.ParseNotation(c.Output)
}

// LogLevel resolves the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Serve.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := c.OutputNotation(); err != nil {
		return fmt.Errorf("config: output: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("config: history.db_path is required when history is enabled")
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("config: history.limit must not be negative, got %d", c.History.Limit)
	}
	if c.Serve.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: serve.idle_timeout_minutes must not be negative, got %d", c.Serve.IdleTimeoutMinutes)
	}
	return nil
}
