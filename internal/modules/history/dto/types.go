package dto

import "time"

// CheckOutput is one evaluation row for handlers and the UI.
type CheckOutput struct {
	At           time.Time
	Phase        string
	Today        int
	Yesterday    int
	ShouldBlock  bool
	Delta        int
	BlockChanged bool
	GuidedSlug   string
}
