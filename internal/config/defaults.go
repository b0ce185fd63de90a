package config

import (
	_ "embed"
)

//go:embed defaults/colorx.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Output: "hex",
		Log: LogConfig{
			Level: "warn",
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.colorx/history.db",
			Limit:   20,
		},
		Serve: ServeConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
