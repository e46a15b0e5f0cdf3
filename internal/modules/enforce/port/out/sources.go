package out

import (
	"context"

	"grindlock/internal/modules/enforce/domain"
)

// Progress is the enforce-side progress view: the counts the policy needs
// plus the completed set for guided-task selection.
type Progress struct {
	Today     int
	Yesterday int
	Completed map[string]bool
}

// ProgressSource reads current progress. Failures surface as
// apperrors.ErrProviderUnavailable; the engine then makes no blocking
// decision and leaves the mechanism untouched.
type ProgressSource interface {
	Progress(ctx context.Context) (Progress, error)
}

// CatalogSource lists the reference problems in canonical order.
type CatalogSource interface {
	Tasks(ctx context.Context) ([]domain.Task, error)
}

// TaskLauncher opens a problem in the user's environment, best effort.
type TaskLauncher interface {
	Open(ctx context.Context, task domain.Task) error
}
