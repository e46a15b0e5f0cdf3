package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"grindlock/internal/modules/enforce/domain"
	enforcein "grindlock/internal/modules/enforce/port/in"
	enforceout "grindlock/internal/modules/enforce/port/out"
	"grindlock/internal/modules/enforce/service"
	"grindlock/internal/modules/enforce/usecase"
	"grindlock/internal/platform/clock"
	apperrors "grindlock/internal/platform/errors"
)

var defaults = domain.Thresholds{Daily: 4, MorningCarryover: 2, MiddayMicro: 2}

type fakeProgress struct {
	progress enforceout.Progress
	err      error
}

func (f *fakeProgress) Progress(context.Context) (enforceout.Progress, error) {
	if f.err != nil {
		return enforceout.Progress{}, f.err
	}
	return f.progress, nil
}

type fakeCatalog struct{}

func (fakeCatalog) Tasks(context.Context) ([]domain.Task, error) {
	return []domain.Task{
		{Slug: "two-sum", Title: "Two Sum", LeetCodeURL: "https://leetcode.com/problems/two-sum/"},
		{Slug: "3sum", Title: "3Sum"},
	}, nil
}

type fakeBlocker struct {
	active   bool
	phase    domain.GoalPhase
	writeErr error
}

func (f *fakeBlocker) Status(context.Context) (enforceout.BlockStatus, error) {
	return enforceout.BlockStatus{Active: f.active, Phase: f.phase}, nil
}

func (f *fakeBlocker) Activate(_ context.Context, phase domain.GoalPhase, _ []string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.active = true
	f.phase = phase
	return nil
}

func (f *fakeBlocker) Deactivate(context.Context) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.active = false
	return nil
}

type fakeNotifier struct {
	events []enforceout.Event
}

func (f *fakeNotifier) Notify(_ context.Context, event enforceout.Event) error {
	f.events = append(f.events, event)
	return nil
}

type fakeRecorder struct {
	records []enforceout.CheckRecord
}

func (f *fakeRecorder) Record(_ context.Context, record enforceout.CheckRecord) error {
	f.records = append(f.records, record)
	return nil
}

type fakeLauncher struct {
	opened []string
}

func (f *fakeLauncher) Open(_ context.Context, task domain.Task) error {
	f.opened = append(f.opened, task.Slug)
	return nil
}

func newTestInteractor(progress *fakeProgress, blocker *fakeBlocker, notifier *fakeNotifier, recorder *fakeRecorder, launcher *fakeLauncher) enforcein.Usecase {
	controller := service.NewBlockController(blocker, []string{"youtube.com"})
	engine := service.NewEngine(progress, fakeCatalog{}, controller, defaults)
	clk := clock.Fixed{At: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	return usecase.NewInteractor(engine, controller, notifier, recorder, launcher, clk, log.New(io.Discard))
}

func TestRunCheckBehindBlocksNotifiesAndRecords(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{progress: enforceout.Progress{
		Today: 0, Yesterday: 0, Completed: map[string]bool{},
	}}
	blocker := &fakeBlocker{}
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	launcher := &fakeLauncher{}
	interactor := newTestInteractor(progress, blocker, notifier, recorder, launcher)

	decision, err := interactor.RunCheck(context.Background(), "midday")
	if err != nil {
		t.Fatalf("run check: %v", err)
	}
	if !decision.ShouldBlock || !decision.BlockActive || !decision.BlockChanged {
		t.Fatalf("decision: %+v", decision)
	}
	if len(recorder.records) != 1 || recorder.records[0].Phase != domain.PhaseMidday {
		t.Fatalf("records: %+v", recorder.records)
	}
	if len(notifier.events) != 1 || notifier.events[0].Kind != enforceout.EventBlocked {
		t.Fatalf("events: %+v", notifier.events)
	}
	if len(launcher.opened) != 1 || launcher.opened[0] != "two-sum" {
		t.Fatalf("guided task not opened: %v", launcher.opened)
	}
}

func TestRunCheckGoalMetReleasesAndNotifies(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{progress: enforceout.Progress{Today: 4, Yesterday: 2}}
	blocker := &fakeBlocker{active: true, phase: domain.PhaseMidday}
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	launcher := &fakeLauncher{}
	interactor := newTestInteractor(progress, blocker, notifier, recorder, launcher)

	decision, err := interactor.RunCheck(context.Background(), "evening")
	if err != nil {
		t.Fatalf("run check: %v", err)
	}
	if decision.ShouldBlock || decision.BlockActive {
		t.Fatalf("decision: %+v", decision)
	}
	if len(notifier.events) != 1 || notifier.events[0].Kind != enforceout.EventUnblocked {
		t.Fatalf("events: %+v", notifier.events)
	}
	if len(launcher.opened) != 0 {
		t.Fatalf("nothing should open when goal is met: %v", launcher.opened)
	}
}

func TestRunCheckProviderFailureRecordsNothing(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{err: apperrors.ErrProviderUnavailable}
	blocker := &fakeBlocker{}
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	interactor := newTestInteractor(progress, blocker, notifier, recorder, &fakeLauncher{})

	_, err := interactor.RunCheck(context.Background(), "morning")
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
	if len(recorder.records) != 0 || len(notifier.events) != 0 {
		t.Fatal("failed evaluation must not record or notify")
	}
}

func TestRunCheckStatusIsAdvisory(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{progress: enforceout.Progress{Today: 0, Yesterday: 0}}
	blocker := &fakeBlocker{}
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	interactor := newTestInteractor(progress, blocker, notifier, recorder, &fakeLauncher{})

	decision, err := interactor.RunCheck(context.Background(), "status")
	if err != nil {
		t.Fatalf("run check: %v", err)
	}
	if decision.ShouldBlock || blocker.active {
		t.Fatalf("status must not enforce: %+v", decision)
	}
	if len(recorder.records) != 0 || len(notifier.events) != 0 {
		t.Fatal("status checks are not recorded or announced")
	}
}

func TestRunCheckPermissionDeniedStillNotifiesBehind(t *testing.T) {
	t.Parallel()
	progress := &fakeProgress{progress: enforceout.Progress{Today: 0, Yesterday: 0, Completed: map[string]bool{}}}
	blocker := &fakeBlocker{writeErr: apperrors.ErrPermissionDenied}
	notifier := &fakeNotifier{}
	recorder := &fakeRecorder{}
	interactor := newTestInteractor(progress, blocker, notifier, recorder, &fakeLauncher{})

	decision, err := interactor.RunCheck(context.Background(), "evening")
	if err != nil {
		t.Fatalf("write failure must not abort: %v", err)
	}
	if !decision.ShouldBlock || decision.BlockActive {
		t.Fatalf("decision: %+v", decision)
	}
	if len(notifier.events) != 1 || notifier.events[0].Kind != enforceout.EventBehind {
		t.Fatalf("events: %+v", notifier.events)
	}
}
