package out

import (
	"context"
	"time"

	"grindlock/internal/modules/enforce/domain"
)

// CheckRecord is one completed evaluation, persisted for history queries.
type CheckRecord struct {
	At           time.Time
	Phase        domain.GoalPhase
	Today        int
	Yesterday    int
	ShouldBlock  bool
	Delta        int
	BlockChanged bool
	GuidedSlug   string
}

// CheckRecorder appends evaluation records. Persistence failures are
// reported but never stop an evaluation.
type CheckRecorder interface {
	Record(ctx context.Context, record CheckRecord) error
}
