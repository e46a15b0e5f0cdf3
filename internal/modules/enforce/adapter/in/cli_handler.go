package in

import (
	"context"

	"grindlock/internal/modules/enforce/dto"
	enforcein "grindlock/internal/modules/enforce/port/in"
)

type CLIHandler struct {
	usecase enforcein.Usecase
}

func NewCLIHandler(usecase enforcein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) RunCheck(ctx context.Context, mode string) (dto.DecisionOutput, error) {
	return h.usecase.RunCheck(ctx, mode)
}

func (h CLIHandler) NextTask(ctx context.Context, open bool) (dto.GuidedTaskOutput, error) {
	return h.usecase.NextTask(ctx, open)
}

func (h CLIHandler) ForceUnblock(ctx context.Context) error {
	return h.usecase.ForceUnblock(ctx)
}

func (h CLIHandler) BlockStatus(ctx context.Context) (dto.BlockStatusOutput, error) {
	return h.usecase.BlockStatus(ctx)
}
