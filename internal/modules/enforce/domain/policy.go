package domain

// Thresholds are the configured goal levels. All values are non-negative;
// the evening target is the daily target.
type Thresholds struct {
	Daily            int
	MorningCarryover int
	MiddayMicro      int
}

// Decision is the outcome of evaluating one phase against a progress
// snapshot. It is a pure value: identical inputs always produce an
// identical decision.
type Decision struct {
	Phase       GoalPhase
	ShouldBlock bool
	Threshold   int
	Actual      int
	Delta       int // problems still needed today, max(0, threshold-actual)
}

// Evaluate computes the enforcement decision for a phase.
//
// Morning judges yesterday: the prior day's shortfall is only discoverable
// once the day has closed. Its Delta still reports today's remaining work
// against the daily target, since yesterday can no longer be amended.
// Midday and Evening judge today against the micro-goal and daily target.
// Polling must be resolved to its trigger phase before calling Evaluate;
// passed directly it is advisory, like Idle.
func Evaluate(phase GoalPhase, today, yesterday int, t Thresholds) Decision {
	switch phase {
	case PhaseMorning:
		return Decision{
			Phase:       PhaseMorning,
			ShouldBlock: yesterday < t.MorningCarryover,
			Threshold:   t.MorningCarryover,
			Actual:      yesterday,
			Delta:       unmet(t.Daily, today),
		}
	case PhaseMidday:
		return Decision{
			Phase:       PhaseMidday,
			ShouldBlock: today < t.MiddayMicro,
			Threshold:   t.MiddayMicro,
			Actual:      today,
			Delta:       unmet(t.MiddayMicro, today),
		}
	case PhaseEvening:
		return Decision{
			Phase:       PhaseEvening,
			ShouldBlock: today < t.Daily,
			Threshold:   t.Daily,
			Actual:      today,
			Delta:       unmet(t.Daily, today),
		}
	default:
		return Decision{
			Phase:     phase,
			Threshold: t.Daily,
			Actual:    today,
			Delta:     unmet(t.Daily, today),
		}
	}
}

func unmet(threshold, actual int) int {
	if actual >= threshold {
		return 0
	}
	return threshold - actual
}
