package domain_test

import (
	"errors"
	"testing"

	"grindlock/internal/modules/enforce/domain"
	apperrors "grindlock/internal/platform/errors"
)

var defaults = domain.Thresholds{Daily: 4, MorningCarryover: 2, MiddayMicro: 2}

func TestEvaluateMorningBlocksOnMissedCarryover(t *testing.T) {
	t.Parallel()
	decision := domain.Evaluate(domain.PhaseMorning, 0, 1, defaults)
	if !decision.ShouldBlock {
		t.Fatal("yesterday=1 under carryover=2 must block")
	}
	if decision.Actual != 1 || decision.Threshold != 2 {
		t.Fatalf("morning judges yesterday vs carryover: %+v", decision)
	}
	if decision.Delta != 4 {
		t.Fatalf("morning delta reports today's remaining work: %+v", decision)
	}
}

func TestEvaluateMorningPassesOnMetCarryover(t *testing.T) {
	t.Parallel()
	for yesterday := 2; yesterday <= 6; yesterday++ {
		decision := domain.Evaluate(domain.PhaseMorning, 0, yesterday, defaults)
		if decision.ShouldBlock {
			t.Fatalf("yesterday=%d meets carryover, must not block", yesterday)
		}
	}
}

func TestEvaluateMiddayMicroGoal(t *testing.T) {
	t.Parallel()
	if d := domain.Evaluate(domain.PhaseMidday, 2, 0, defaults); d.ShouldBlock || d.Delta != 0 {
		t.Fatalf("today=2 meets micro-goal=2: %+v", d)
	}
	if d := domain.Evaluate(domain.PhaseMidday, 0, 5, defaults); !d.ShouldBlock || d.Delta != 2 {
		t.Fatalf("today=0 under micro-goal=2: %+v", d)
	}
}

func TestEvaluateEveningReleasesAtDailyTarget(t *testing.T) {
	t.Parallel()
	for today := 4; today <= 8; today++ {
		decision := domain.Evaluate(domain.PhaseEvening, today, 0, defaults)
		if decision.ShouldBlock || decision.Delta != 0 {
			t.Fatalf("today=%d meets daily target: %+v", today, decision)
		}
	}
	if d := domain.Evaluate(domain.PhaseEvening, 3, 0, defaults); !d.ShouldBlock || d.Delta != 1 {
		t.Fatalf("today=3 under daily=4: %+v", d)
	}
}

func TestEvaluateIdleIsAdvisory(t *testing.T) {
	t.Parallel()
	decision := domain.Evaluate(domain.PhaseIdle, 1, 0, defaults)
	if decision.ShouldBlock {
		t.Fatal("idle never blocks")
	}
	if decision.Delta != 3 {
		t.Fatalf("idle still reports remaining work: %+v", decision)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()
	first := domain.Evaluate(domain.PhaseMidday, 1, 2, defaults)
	second := domain.Evaluate(domain.PhaseMidday, 1, 2, defaults)
	if first != second {
		t.Fatalf("same inputs, different decisions: %+v vs %+v", first, second)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		mode string
		want domain.GoalPhase
	}{
		{"morning", domain.PhaseMorning},
		{"midday", domain.PhaseMidday},
		{"evening", domain.PhaseEvening},
		{"poll", domain.PhasePolling},
		{"status", domain.PhaseIdle},
	}
	for _, tc := range cases {
		phase, err := domain.ParseMode(tc.mode)
		if err != nil || phase != tc.want {
			t.Fatalf("ParseMode(%q) = %v, %v", tc.mode, phase, err)
		}
	}
}

func TestParseModeUnknownDegradesToIdle(t *testing.T) {
	t.Parallel()
	phase, err := domain.ParseMode("brunch")
	if !errors.Is(err, apperrors.ErrInvalidPhase) {
		t.Fatalf("want ErrInvalidPhase, got %v", err)
	}
	if phase != domain.PhaseIdle {
		t.Fatalf("unknown mode must degrade to idle, got %v", phase)
	}
}

func TestParseTriggerPhaseRejectsNonBlocking(t *testing.T) {
	t.Parallel()
	if _, err := domain.ParseTriggerPhase("midday"); err != nil {
		t.Fatalf("midday is a valid trigger: %v", err)
	}
	if _, err := domain.ParseTriggerPhase("poll"); !errors.Is(err, apperrors.ErrInvalidPhase) {
		t.Fatalf("poll cannot trigger a block, got %v", err)
	}
}

func TestNextIncompleteFollowsCanonicalOrder(t *testing.T) {
	t.Parallel()
	tasks := []domain.Task{
		{Slug: "two-sum"},
		{Slug: "3sum"},
		{Slug: "valid-parentheses"},
	}
	next, ok := domain.NextIncomplete(tasks, map[string]bool{"two-sum": true})
	if !ok || next.Slug != "3sum" {
		t.Fatalf("next = %+v, ok = %v", next, ok)
	}
	if _, ok := domain.NextIncomplete(tasks, map[string]bool{
		"two-sum": true, "3sum": true, "valid-parentheses": true,
	}); ok {
		t.Fatal("all done must report no next task")
	}
}
