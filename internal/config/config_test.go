package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLUBSOCS_ADDR", ":9999")
	t.Setenv("CLUBSOCS_REQUEST_TIMEOUT", "5s")
	t.Setenv("CLUBSOCS_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("CLUBSOCS_REQUEST_TIMEOUT", "eventually")

	cfg := Load()
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("timeout = %v, want default on bad value", cfg.RequestTimeout)
	}
}
