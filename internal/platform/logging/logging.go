// Package logging builds the daemon's logger on charmbracelet/log. CLI
// commands print their results to the command writer; the logger exists for
// the long-lived scheduler, where timestamps and levels matter.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr with the given component prefix.
func New(component string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          component,
	})
	return logger
}

// NewFile returns a logger that tees to stderr and a log file under dir,
// plus a close func for the file handle.
func NewFile(dir, component string) (*log.Logger, func() error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, "grindlock.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(io.MultiWriter(os.Stderr, file), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          component,
	})
	return logger, file.Close, nil
}
