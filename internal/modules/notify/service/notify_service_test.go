package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"grindlock/internal/modules/notify/domain"
	"grindlock/internal/modules/notify/service"
)

type fakeSink struct {
	name      string
	err       error
	delivered []domain.Notification
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Deliver(_ context.Context, notification domain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, notification)
	return nil
}

func TestNotifyFansOutToAllSinks(t *testing.T) {
	t.Parallel()
	first := &fakeSink{name: "first"}
	second := &fakeSink{name: "second"}
	svc := service.NewNotifyService(first, second)

	err := svc.Notify(context.Background(), domain.Notification{Kind: "blocked", Title: "Distractions blocked"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(first.delivered) != 1 || len(second.delivered) != 1 {
		t.Fatalf("fan-out incomplete: %d/%d", len(first.delivered), len(second.delivered))
	}
}

func TestNotifyFailingSinkDoesNotStopOthers(t *testing.T) {
	t.Parallel()
	broken := &fakeSink{name: "broken", err: errors.New("toast daemon down")}
	working := &fakeSink{name: "working"}
	svc := service.NewNotifyService(broken, working)

	err := svc.Notify(context.Background(), domain.Notification{Kind: "unblocked"})
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("failure not reported: %v", err)
	}
	if len(working.delivered) != 1 {
		t.Fatal("healthy sink skipped after failure")
	}
}

func TestNotifyWithNoSinks(t *testing.T) {
	t.Parallel()
	if err := service.NewNotifyService().Notify(context.Background(), domain.Notification{}); err != nil {
		t.Fatalf("no sinks must be a no-op: %v", err)
	}
}
