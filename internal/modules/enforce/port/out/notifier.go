package out

import "context"

// EventKind classifies what an evaluation meant for the user.
type EventKind string

const (
	EventBehind    EventKind = "behind"
	EventBlocked   EventKind = "blocked"
	EventUnblocked EventKind = "unblocked"
	EventGoalMet   EventKind = "goal-met"
)

// Event is a user-facing notification about an enforcement transition.
type Event struct {
	Kind    EventKind
	Title   string
	Message string
}

// Notifier delivers events. Delivery failures are reported but never stop
// an evaluation.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
