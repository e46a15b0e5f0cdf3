package out

import (
	"context"

	"grindlock/internal/modules/enforce/domain"
)

// BlockStatus is the actual, externally observed state of the blocking
// mechanism. Phase is the goal phase that activated the block; it is
// carried by the mechanism itself so a later poll can re-evaluate the same
// goal even across process restarts.
type BlockStatus struct {
	Active  bool
	Phase   domain.GoalPhase
	Domains []string
}

// DomainBlocker toggles the system-level distraction block. Implementations
// must report the mechanism's real current state from Status, never a
// cached flag, and must fail with apperrors.ErrPermissionDenied when the
// block list cannot be written.
type DomainBlocker interface {
	Status(ctx context.Context) (BlockStatus, error)
	Activate(ctx context.Context, phase domain.GoalPhase, domains []string) error
	Deactivate(ctx context.Context) error
}
