package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"grindlock/internal/modules/history/adapter/out"
	"grindlock/internal/modules/history/domain"
)

func newLog(t *testing.T) *out.SQLiteCheckLog {
	t.Helper()
	log, err := out.NewSQLiteCheckLog(filepath.Join(t.TempDir(), "grindlock.db"))
	if err != nil {
		t.Fatalf("open check log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func TestAppendAndRecent(t *testing.T) {
	t.Parallel()
	log := newLog(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := log.Append(ctx, domain.CheckRecord{
			At:          base.Add(time.Duration(i) * time.Hour),
			Phase:       "morning",
			Today:       i,
			Yesterday:   1,
			ShouldBlock: i == 0,
			Delta:       4 - i,
			GuidedSlug:  "two-sum",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := log.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("limit not applied: %d records", len(records))
	}
	if records[0].Today != 2 || records[1].Today != 1 {
		t.Fatalf("not newest-first: %+v", records)
	}
	if !records[0].At.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("timestamp round-trip: %v", records[0].At)
	}
}

func TestRecentOnEmptyLog(t *testing.T) {
	t.Parallel()
	records, err := newLog(t).Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty log, got %d", len(records))
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	t.Parallel()
	log := newLog(t)
	ctx := context.Background()

	err := log.Append(ctx, domain.CheckRecord{
		At: time.Now(), Phase: "evening", ShouldBlock: true, BlockChanged: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	records, err := log.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if !records[0].ShouldBlock || !records[0].BlockChanged {
		t.Fatalf("booleans lost: %+v", records[0])
	}
}
