package dto

import "time"

// SnapshotOutput is the progress read surfaced to handlers and the UI.
type SnapshotOutput struct {
	TakenAt        time.Time
	Today          int
	Yesterday      int
	TotalCompleted int
	CompletedSlugs []string
	SolvedToday    []string
}
