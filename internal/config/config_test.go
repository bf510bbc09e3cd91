package config

import (
	"testing"
	"time"
)

func TestSimConfig_Conversions(t *testing.T) {
	cfg := SimConfig{TickMs: 250, DefaultDurationMs: 180_000}

	if got := cfg.Tick(); got != 250*time.Millisecond {
		t.Errorf("Tick() = %v, want 250ms", got)
	}
	if got := cfg.DefaultDuration(); got != 3*time.Minute {
		t.Errorf("DefaultDuration() = %v, want 3m", got)
	}
}

func TestSimConfig_ZeroSelectsEngineDefaults(t *testing.T) {
	var cfg SimConfig
	if got := cfg.Tick(); got != 0 {
		t.Errorf("Tick() = %v, want 0", got)
	}
	if got := cfg.DefaultDuration(); got != 0 {
		t.Errorf("DefaultDuration() = %v, want 0", got)
	}
}

func TestGetConfigPaths_EndsWithWorkingDirectory(t *testing.T) {
	paths := getConfigPaths()
	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned nothing")
	}
	// The pwd config is last so it wins over the home config.
	if got := paths[len(paths)-1]; got != "config.toml" {
		t.Errorf("last config path = %q, want config.toml", got)
	}
}
