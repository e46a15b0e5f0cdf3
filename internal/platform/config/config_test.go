package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"grindlock/internal/platform/config"
)

func TestNewDefaultsWithoutFile(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	cfg, err := config.New(home)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Targets.Daily != 4 || cfg.Targets.MorningCarryover != 2 || cfg.Targets.MiddayMicro != 2 {
		t.Fatalf("unexpected default targets: %+v", cfg.Targets)
	}
	if cfg.Schedule.PollInterval != 10*time.Minute {
		t.Fatalf("unexpected poll interval: %v", cfg.Schedule.PollInterval)
	}
	if cfg.DBPath != filepath.Join(home, "grindlock.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if len(cfg.Domains) == 0 {
		t.Fatalf("default domain list is empty")
	}
}

func TestNewReadsOverrides(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	raw := []byte("targets:\n  daily: 6\n  midday_micro: 1\nhosts_path: /tmp/hosts\ndomains:\n  - example.com\n")
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(home)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Targets.Daily != 6 {
		t.Fatalf("daily override not applied: %d", cfg.Targets.Daily)
	}
	if cfg.Targets.MiddayMicro != 1 {
		t.Fatalf("midday override not applied: %d", cfg.Targets.MiddayMicro)
	}
	if cfg.HostsPath != "/tmp/hosts" {
		t.Fatalf("hosts path override not applied: %s", cfg.HostsPath)
	}
	if len(cfg.Domains) != 1 || cfg.Domains[0] != "example.com" {
		t.Fatalf("domain override not applied: %v", cfg.Domains)
	}
}

func TestNewRejectsNegativeTargets(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	raw := []byte("targets:\n  daily: -1\n")
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(home); err == nil {
		t.Fatalf("negative target should fail validation")
	}
}

func TestWriteDefaultDoesNotClobber(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	path, err := config.WriteDefault(home)
	if err != nil {
		t.Fatalf("write default: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	custom := append(before, []byte("# edited\n")...)
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("edit config: %v", err)
	}
	if _, err := config.WriteDefault(home); err != nil {
		t.Fatalf("second write default: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read config: %v", err)
	}
	if string(after) != string(custom) {
		t.Fatalf("write default overwrote an existing config")
	}
}

func TestParseClockTime(t *testing.T) {
	t.Parallel()
	hour, minute, err := config.ParseClockTime("18:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if hour != 18 || minute != 30 {
		t.Fatalf("got %d:%d", hour, minute)
	}
	if _, _, err := config.ParseClockTime("25:00"); err == nil {
		t.Fatalf("invalid hour should fail")
	}
}
