package order

import (
	"fmt"

	"ordermgmt/internal/pkg/errs"
)

// Status is the lifecycle stage of an order. It is stored as its raw string
// value, so persisted rows stay readable and survive registry changes.
//
// The transition graph:
//
//	draft ──┬──> processing ──┬──> completed
//	        │                 │
//	        └──> cancelled <──┘
//
// completed and cancelled are terminal; they have no outgoing transitions.
type Status string

const (
	// StatusDraft is the initial status of every new order.
	StatusDraft Status = "draft"

	// StatusProcessing indicates the order has been accepted and is being worked.
	StatusProcessing Status = "processing"

	// StatusCompleted is a terminal status for fulfilled orders.
	StatusCompleted Status = "completed"

	// StatusCancelled is a terminal status for abandoned orders.
	StatusCancelled Status = "cancelled"
)

// transitionGraph maps each status to the set of statuses it may move to.
// Terminal statuses map to an empty set.
func transitionGraph() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:      {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusCompleted, StatusCancelled},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// statusDescriptions holds the display labels for known statuses.
func statusDescriptions() map[Status]string {
	return map[Status]string{
		StatusDraft:      "Draft",
		StatusProcessing: "Processing",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

// AllStatuses returns every status in the enumeration.
func AllStatuses() []Status {
	return []Status{StatusDraft, StatusProcessing, StatusCompleted, StatusCancelled}
}

// Validate returns an error when the value is not one of the enumeration.
// Used to guard values arriving from requests or persistence.
func (s Status) Validate() error {
	if _, ok := transitionGraph()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}

// Description returns the display label for the status. Unknown values are
// echoed back unchanged: persisted rows may carry statuses that predate the
// current registry, and display must not fail on them.
func (s Status) Description() string {
	if d, ok := statusDescriptions()[s]; ok {
		return d
	}
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
// Unknown statuses are not terminal; they are simply invalid.
func (s Status) IsTerminal() bool {
	targets, ok := transitionGraph()[s]
	return ok && len(targets) == 0
}

// AvailableTransitions returns the statuses reachable from s. The result is
// empty for terminal and unknown statuses; absence of edges is the valid
// terminal signal, not an error.
func AvailableTransitions(s Status) []Status {
	targets := transitionGraph()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// IsValidTransition reports whether from -> to is an edge of the transition
// graph. Unknown from values yield false (fail closed).
func IsValidTransition(from, to Status) bool {
	for _, target := range transitionGraph()[from] {
		if target == to {
			return true
		}
	}
	return false
}

// TransitionDescription renders the human sentence recorded in the history
// log for an executed transition, using the statuses' display labels.
func TransitionDescription(from, to Status) string {
	return fmt.Sprintf("order status changed from %s to %s", from.Description(), to.Description())
}
