package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grindlock/internal/modules/progress/domain"
	"grindlock/internal/modules/progress/service"
	"grindlock/internal/platform/clock"
	apperrors "grindlock/internal/platform/errors"
)

type fakeSource struct {
	submissions []domain.Submission
	err         error
	gotLimit    int
}

func (f *fakeSource) RecentAccepted(_ context.Context, limit int) ([]domain.Submission, error) {
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.submissions, nil
}

func TestSnapshotBucketsAgainstCatalog(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	source := &fakeSource{submissions: []domain.Submission{
		{TitleSlug: "two-sum", AcceptedAt: now.Add(-time.Hour)},
		{TitleSlug: "3sum", AcceptedAt: now.Add(-20 * time.Hour)},
	}}
	svc := service.NewProgressService(source, clock.Fixed{At: now})

	snap, err := svc.Snapshot(context.Background(), []string{"two-sum", "3sum"})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Today != 1 || snap.Yesterday != 1 {
		t.Fatalf("buckets wrong: %+v", snap)
	}
	if source.gotLimit <= 0 {
		t.Fatalf("limit not forwarded: %d", source.gotLimit)
	}
}

func TestSnapshotPropagatesProviderFailure(t *testing.T) {
	t.Parallel()
	source := &fakeSource{err: apperrors.ErrProviderUnavailable}
	svc := service.NewProgressService(source, clock.Fixed{At: time.Now()})

	_, err := svc.Snapshot(context.Background(), nil)
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}
