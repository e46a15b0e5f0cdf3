package in

import (
	"context"

	"grindlock/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.TaskOutput, error)
	Get(ctx context.Context, slug string) (dto.TaskOutput, error)
	Summarize(ctx context.Context, done map[string]bool) (dto.SummaryOutput, error)
}
