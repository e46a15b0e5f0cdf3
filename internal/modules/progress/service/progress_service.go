package service

import (
	"context"
	"fmt"

	"grindlock/internal/modules/progress/domain"
	progressout "grindlock/internal/modules/progress/port/out"
	"grindlock/internal/platform/clock"
)

// recentLimit is how many accepted submissions to pull per snapshot. The
// provider caps its recent-submission feed anyway; this only needs to cover
// two days of solving.
const recentLimit = 50

// ProgressService builds progress snapshots from the submission source.
type ProgressService struct {
	source progressout.SubmissionSource
	clock  clock.Clock
}

func NewProgressService(source progressout.SubmissionSource, clk clock.Clock) *ProgressService {
	return &ProgressService{source: source, clock: clk}
}

func (s *ProgressService) Snapshot(ctx context.Context, catalogSlugs []string) (domain.Snapshot, error) {
	submissions, err := s.source.RecentAccepted(ctx, recentLimit)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch recent submissions: %w", err)
	}
	return domain.Build(s.clock.Now(), catalogSlugs, submissions), nil
}
