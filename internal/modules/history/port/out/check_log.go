package out

import (
	"context"

	"grindlock/internal/modules/history/domain"
)

// CheckLog is the append-only store of evaluations.
type CheckLog interface {
	Append(ctx context.Context, record domain.CheckRecord) error
	Recent(ctx context.Context, limit int) ([]domain.CheckRecord, error)
}
