package domain

import (
	"fmt"

	apperrors "grindlock/internal/platform/errors"
)

// GoalPhase identifies which time-boxed goal an evaluation runs under.
// It is derived from the invocation mode and never persisted in-process;
// the only durable phase record is the one the blocking mechanism carries
// while a block is active.
type GoalPhase string

const (
	PhaseMorning GoalPhase = "morning"
	PhaseMidday  GoalPhase = "midday"
	PhaseEvening GoalPhase = "evening"
	PhasePolling GoalPhase = "poll"
	PhaseIdle    GoalPhase = "idle"
)

func (p GoalPhase) String() string {
	return string(p)
}

// ParseMode maps an invocation mode to a phase. Unrecognized modes degrade
// to Idle and report ErrInvalidPhase; callers treat the evaluation as
// advisory rather than failing.
func ParseMode(mode string) (GoalPhase, error) {
	switch mode {
	case "morning":
		return PhaseMorning, nil
	case "midday":
		return PhaseMidday, nil
	case "evening":
		return PhaseEvening, nil
	case "poll":
		return PhasePolling, nil
	case "status", "idle":
		return PhaseIdle, nil
	default:
		return PhaseIdle, fmt.Errorf("mode %q: %w", mode, apperrors.ErrInvalidPhase)
	}
}

// ParseTriggerPhase validates a phase read back from the blocking mechanism.
// Only phases that can activate a block are accepted.
func ParseTriggerPhase(value string) (GoalPhase, error) {
	switch GoalPhase(value) {
	case PhaseMorning, PhaseMidday, PhaseEvening:
		return GoalPhase(value), nil
	default:
		return PhaseIdle, fmt.Errorf("trigger phase %q: %w", value, apperrors.ErrInvalidPhase)
	}
}
