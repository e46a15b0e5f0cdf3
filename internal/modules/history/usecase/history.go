package usecase

import (
	"context"

	"grindlock/internal/modules/history/domain"
	"grindlock/internal/modules/history/dto"
	historyin "grindlock/internal/modules/history/port/in"
	"grindlock/internal/modules/history/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) historyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, record dto.CheckOutput) error {
	return i.svc.Record(ctx, domain.CheckRecord{
		At:           record.At,
		Phase:        record.Phase,
		Today:        record.Today,
		Yesterday:    record.Yesterday,
		ShouldBlock:  record.ShouldBlock,
		Delta:        record.Delta,
		BlockChanged: record.BlockChanged,
		GuidedSlug:   record.GuidedSlug,
	})
}

func (i *Interactor) Recent(ctx context.Context, limit int) ([]dto.CheckOutput, error) {
	records, err := i.svc.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckOutput, 0, len(records))
	for _, record := range records {
		out = append(out, dto.CheckOutput{
			At:           record.At,
			Phase:        record.Phase,
			Today:        record.Today,
			Yesterday:    record.Yesterday,
			ShouldBlock:  record.ShouldBlock,
			Delta:        record.Delta,
			BlockChanged: record.BlockChanged,
			GuidedSlug:   record.GuidedSlug,
		})
	}
	return out, nil
}
