package service

import (
	"context"
	"fmt"

	"grindlock/internal/modules/enforce/domain"
	enforceout "grindlock/internal/modules/enforce/port/out"
)

// ReconcileResult reports what reconciliation did to the mechanism.
type ReconcileResult struct {
	Active  bool // mechanism state after reconciliation
	Changed bool
}

// BlockController brings the blocking mechanism in line with a decision.
// It always reads the mechanism's actual state first: a previous run may
// have crashed mid-operation, or another invocation may have toggled the
// block since. Repeated calls with the same decision are no-ops.
type BlockController struct {
	blocker enforceout.DomainBlocker
	domains []string
}

func NewBlockController(blocker enforceout.DomainBlocker, domains []string) *BlockController {
	return &BlockController{blocker: blocker, domains: domains}
}

func (c *BlockController) Reconcile(ctx context.Context, decision domain.Decision) (ReconcileResult, error) {
	status, err := c.blocker.Status(ctx)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("read block state: %w", err)
	}

	switch {
	case decision.ShouldBlock && !status.Active:
		if err := c.blocker.Activate(ctx, decision.Phase, c.domains); err != nil {
			return ReconcileResult{Active: false}, fmt.Errorf("activate block: %w", err)
		}
		return ReconcileResult{Active: true, Changed: true}, nil
	case !decision.ShouldBlock && status.Active:
		if err := c.blocker.Deactivate(ctx); err != nil {
			return ReconcileResult{Active: true}, fmt.Errorf("deactivate block: %w", err)
		}
		return ReconcileResult{Active: false, Changed: true}, nil
	default:
		return ReconcileResult{Active: status.Active}, nil
	}
}

// Status exposes the mechanism's current state for advisory reads.
func (c *BlockController) Status(ctx context.Context) (enforceout.BlockStatus, error) {
	return c.blocker.Status(ctx)
}

// ForceDeactivate removes this tool's entries unconditionally.
func (c *BlockController) ForceDeactivate(ctx context.Context) error {
	status, err := c.blocker.Status(ctx)
	if err != nil {
		return fmt.Errorf("read block state: %w", err)
	}
	if !status.Active {
		return nil
	}
	if err := c.blocker.Deactivate(ctx); err != nil {
		return fmt.Errorf("deactivate block: %w", err)
	}
	return nil
}
