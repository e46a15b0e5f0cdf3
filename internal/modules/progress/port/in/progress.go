package in

import (
	"context"

	"grindlock/internal/modules/progress/dto"
)

// Usecase exposes progress reads and credential management.
type Usecase interface {
	// Snapshot fetches recent submissions and buckets them against the
	// reference list. It never caches: each call reflects the provider now.
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	// StoreSession saves the provider session token for later fetches.
	StoreSession(token string) error
	// HasSession reports whether a session token is stored.
	HasSession() bool
}
