package service

import (
	"context"

	"grindlock/internal/modules/history/domain"
	historyout "grindlock/internal/modules/history/port/out"
)

const defaultRecentLimit = 20

type HistoryService struct {
	log historyout.CheckLog
}

func NewHistoryService(log historyout.CheckLog) *HistoryService {
	return &HistoryService{log: log}
}

func (s *HistoryService) Record(ctx context.Context, record domain.CheckRecord) error {
	return s.log.Append(ctx, record)
}

func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.CheckRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.log.Recent(ctx, limit)
}
