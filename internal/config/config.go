// Package config loads the harness configuration from a TOML file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// CommandBuffer sizes the facade/engine channels.
	CommandBuffer int `koanf:"command_buffer"`
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `koanf:"log_level"`
	// Session enables persisting the last playback session.
	Session bool `koanf:"session"`
	// Mpris enables the D-Bus media controls bridge (Linux only).
	Mpris bool `koanf:"mpris"`

	Sim SimConfig `koanf:"sim"`
}

// SimConfig tunes the simulated engine.
type SimConfig struct {
	TickMs            int   `koanf:"tick_ms"`             // position advance interval (default: 250)
	DefaultDurationMs int64 `koanf:"default_duration_ms"` // duration for sources without a hint (default: 180000)
}

// Tick returns the configured tick interval, or 0 for the engine default.
func (c SimConfig) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// DefaultDuration returns the configured fallback duration, or 0 for the
// engine default.
func (c SimConfig) DefaultDuration() time.Duration {
	return time.Duration(c.DefaultDurationMs) * time.Millisecond
}

// Load reads config files in order of priority (last wins) and applies
// defaults for anything left unset. A missing config file is not an error.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		CommandBuffer: 16,
		LogLevel:      "info",
		Session:       true,
		Mpris:         true,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.CommandBuffer < 1 {
		cfg.CommandBuffer = 1
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cadence/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cadence", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}
