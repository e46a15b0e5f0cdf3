package out

import (
	"context"

	"github.com/charmbracelet/log"

	"grindlock/internal/modules/notify/domain"
	notifyout "grindlock/internal/modules/notify/port/out"
)

// LogSink writes notifications to the structured log. It is always
// registered so every event is visible even with no plugins installed.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(logger *log.Logger) notifyout.Sink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string {
	return "log"
}

func (s *LogSink) Deliver(_ context.Context, notification domain.Notification) error {
	s.logger.Info(notification.Title, "kind", notification.Kind, "message", notification.Message)
	return nil
}
