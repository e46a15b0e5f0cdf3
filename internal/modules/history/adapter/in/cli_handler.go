package in

import (
	"context"

	"grindlock/internal/modules/history/dto"
	historyin "grindlock/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Recent(ctx context.Context, limit int) ([]dto.CheckOutput, error) {
	return h.usecase.Recent(ctx, limit)
}
