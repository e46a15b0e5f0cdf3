package in

import (
	"context"

	"grindlock/internal/modules/catalog/dto"
	catalogin "grindlock/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, slug string) (dto.TaskOutput, error) {
	return h.usecase.Get(ctx, slug)
}

func (h CLIHandler) Summarize(ctx context.Context, done map[string]bool) (dto.SummaryOutput, error) {
	return h.usecase.Summarize(ctx, done)
}
