package in

import (
	"context"

	"grindlock/internal/modules/history/dto"
)

// Usecase reads and appends the evaluation log.
type Usecase interface {
	Record(ctx context.Context, record dto.CheckOutput) error
	Recent(ctx context.Context, limit int) ([]dto.CheckOutput, error)
}
