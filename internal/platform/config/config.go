// Package config loads grindlock's configuration from <home>/config.yaml.
// Missing file means defaults; the setup command materializes it for editing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLeetCodeBaseURL = "https://leetcode.com"
	DefaultNeetCodeBaseURL = "https://neetcode.io"
)

// Targets are the goal thresholds, all >= 0.
type Targets struct {
	Daily            int `yaml:"daily"`
	MorningCarryover int `yaml:"morning_carryover"`
	MiddayMicro      int `yaml:"midday_micro"`
}

// Schedule holds the daemon's check times as "HH:MM" wall-clock strings.
type Schedule struct {
	MorningStart string        `yaml:"morning_start"`
	MorningEnd   string        `yaml:"morning_end"`
	Midday       string        `yaml:"midday"`
	Evening      string        `yaml:"evening"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

type LeetCode struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
}

type Config struct {
	Home            string   `yaml:"-"`
	HostsPath       string   `yaml:"hosts_path"`
	LeetCode        LeetCode `yaml:"leetcode"`
	NeetCodeBaseURL string   `yaml:"neetcode_base_url"`
	Targets         Targets  `yaml:"targets"`
	Schedule        Schedule `yaml:"schedule"`
	Domains         []string `yaml:"domains"`

	// Derived paths, not serialized.
	CatalogPath string `yaml:"-"`
	DBPath      string `yaml:"-"`
	PluginsPath string `yaml:"-"`
	LockPath    string `yaml:"-"`
	LogDir      string `yaml:"-"`
}

// DefaultDomains is the distraction block list applied when the config file
// does not override it.
var DefaultDomains = []string{
	"facebook.com",
	"instagram.com",
	"twitter.com",
	"x.com",
	"tiktok.com",
	"youtube.com",
	"reddit.com",
	"netflix.com",
	"hulu.com",
	"disneyplus.com",
	"pinterest.com",
	"snapchat.com",
	"discord.com",
	"twitch.tv",
}

func defaults(home string) Config {
	return Config{
		Home:            home,
		HostsPath:       "/etc/hosts",
		LeetCode:        LeetCode{BaseURL: DefaultLeetCodeBaseURL},
		NeetCodeBaseURL: DefaultNeetCodeBaseURL,
		Targets:         Targets{Daily: 4, MorningCarryover: 2, MiddayMicro: 2},
		Schedule: Schedule{
			MorningStart: "09:00",
			MorningEnd:   "11:00",
			Midday:       "12:00",
			Evening:      "18:00",
			PollInterval: 10 * time.Minute,
		},
		Domains: append([]string(nil), DefaultDomains...),
	}
}

// New resolves the grindlock home directory (defaulting to ~/.grindlock),
// reads config.yaml when present, and fills in derived paths.
func New(home string) (Config, error) {
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		home = filepath.Join(userHome, ".grindlock")
	}

	cfg := defaults(home)
	path := filepath.Join(home, "config.yaml")
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.Home = home
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.CatalogPath = filepath.Join(home, "catalog.yaml")
	cfg.DBPath = filepath.Join(home, "grindlock.db")
	cfg.PluginsPath = filepath.Join(home, "plugins")
	cfg.LockPath = filepath.Join(home, "daemon.lock")
	cfg.LogDir = filepath.Join(home, "log")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Targets.Daily < 0 || c.Targets.MorningCarryover < 0 || c.Targets.MiddayMicro < 0 {
		return fmt.Errorf("targets must be >= 0")
	}
	if c.Schedule.PollInterval <= 0 {
		return fmt.Errorf("schedule.poll_interval must be positive")
	}
	if len(c.Domains) == 0 {
		return fmt.Errorf("domains must not be empty")
	}
	for _, field := range []string{c.Schedule.MorningStart, c.Schedule.MorningEnd, c.Schedule.Midday, c.Schedule.Evening} {
		if _, _, err := ParseClockTime(field); err != nil {
			return err
		}
	}
	return nil
}

// WriteDefault persists the effective configuration to <home>/config.yaml so
// the user has a file to edit. Existing files are left alone.
func WriteDefault(home string) (string, error) {
	cfg, err := New(home)
	if err != nil {
		return "", err
	}
	path := filepath.Join(cfg.Home, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(cfg.Home, 0o755); err != nil {
		return "", fmt.Errorf("create home dir: %w", err)
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

// ParseClockTime parses an "HH:MM" wall-clock string.
func ParseClockTime(value string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return parsed.Hour(), parsed.Minute(), nil
}
