package out

import (
	"context"

	enforceout "grindlock/internal/modules/enforce/port/out"
	"grindlock/internal/modules/history/dto"
	historyin "grindlock/internal/modules/history/port/in"
)

type HistoryRecorderAdapter struct {
	history historyin.Usecase
}

func NewHistoryRecorderAdapter(history historyin.Usecase) enforceout.CheckRecorder {
	return &HistoryRecorderAdapter{history: history}
}

func (a *HistoryRecorderAdapter) Record(ctx context.Context, record enforceout.CheckRecord) error {
	return a.history.Record(ctx, dto.CheckOutput{
		At:           record.At,
		Phase:        record.Phase.String(),
		Today:        record.Today,
		Yesterday:    record.Yesterday,
		ShouldBlock:  record.ShouldBlock,
		Delta:        record.Delta,
		BlockChanged: record.BlockChanged,
		GuidedSlug:   record.GuidedSlug,
	})
}
