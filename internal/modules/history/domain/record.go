package domain

import "time"

// CheckRecord is one persisted goal evaluation.
type CheckRecord struct {
	ID           int64
	At           time.Time
	Phase        string
	Today        int
	Yesterday    int
	ShouldBlock  bool
	Delta        int
	BlockChanged bool
	GuidedSlug   string
}
