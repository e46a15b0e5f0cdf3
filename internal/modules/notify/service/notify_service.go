package service

import (
	"context"
	"errors"
	"fmt"

	"grindlock/internal/modules/notify/domain"
	notifyout "grindlock/internal/modules/notify/port/out"
)

// NotifyService fans notifications out to every sink. A failing sink never
// stops the others; all failures are joined into one reported error.
type NotifyService struct {
	sinks []notifyout.Sink
}

func NewNotifyService(sinks ...notifyout.Sink) *NotifyService {
	return &NotifyService{sinks: sinks}
}

func (s *NotifyService) Notify(ctx context.Context, notification domain.Notification) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Deliver(ctx, notification); err != nil {
			errs = append(errs, fmt.Errorf("sink %s: %w", sink.Name(), err))
		}
	}
	return errors.Join(errs...)
}
