package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrChecksumMismatch = errors.New("plugin checksum mismatch")

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Notification is a user-facing message about an enforcement transition.
type Notification struct {
	Kind    string
	Title   string
	Message string
}

// Manifest declares an external notifier plugin binary. The checksum pins
// the exact binary the user installed; a plugin that fails verification is
// never spawned.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	return nil
}
