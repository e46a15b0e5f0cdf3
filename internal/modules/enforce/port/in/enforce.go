package in

import (
	"context"

	"grindlock/internal/modules/enforce/dto"
)

// Usecase drives goal evaluation and manual overrides.
type Usecase interface {
	// RunCheck evaluates the given mode ("morning", "midday", "evening",
	// "poll", "status") and reconciles the blocking mechanism. "status" is
	// advisory: it computes a decision without touching the mechanism.
	RunCheck(ctx context.Context, mode string) (dto.DecisionOutput, error)
	// NextTask returns the first incomplete problem in canonical order,
	// optionally opening it in the browser.
	NextTask(ctx context.Context, open bool) (dto.GuidedTaskOutput, error)
	// ForceUnblock removes this tool's entries from the blocking mechanism
	// regardless of goal state.
	ForceUnblock(ctx context.Context) error
	// BlockStatus reads the mechanism's current state without evaluating.
	BlockStatus(ctx context.Context) (dto.BlockStatusOutput, error)
}
