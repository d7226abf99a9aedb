package order

import (
	"errors"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/pkg/errs"
)

// History actions. Status changes are one action kind among several in the
// shared order timeline.
const (
	ActionStatusChanged = "status_changed"
	ActionOrderCreated  = "order_created"
)

// ErrHistoryRecordIsNotConstructed is returned when a HistoryRecord was not
// created through one of its constructors.
var ErrHistoryRecordIsNotConstructed = errors.New(
	"HistoryRecord must be created via its constructors",
)

// StatusChange is the structured payload attached to status_changed history
// entries.
type StatusChange struct {
	FromStatus Status    `json:"fromStatus"`
	ToStatus   Status    `json:"toStatus"`
	Role       string    `json:"role"`
	Timestamp  time.Time `json:"timestamp"`
}

// HistoryRecord is an immutable entry in the order's denormalized audit
// timeline. Unlike FlowRecord it is shared with non-status events; the action
// tag tells them apart and Changes is populated only for status changes.
type HistoryRecord struct {
	id      kernel.UUID
	orderID kernel.UUID

	action      string
	description string
	operator    string
	changes     *StatusChange

	createdAt time.Time

	isConstructed bool
}

// NewStatusChangedRecord creates the history entry for an executed status
// transition, with the localized description sentence and structured payload.
func NewStatusChangedRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	from Status,
	to Status,
	operator string,
	role Role,
) (*HistoryRecord, error) {
	changes := &StatusChange{
		FromStatus: from,
		ToStatus:   to,
		Role:       role.String(),
		Timestamp:  time.Now().UTC(),
	}
	return newHistoryRecord(id, orderID, ActionStatusChanged,
		TransitionDescription(from, to), operator, changes, time.Now().UTC())
}

// NewOrderCreatedRecord creates the history entry written when an order comes
// into existence in draft status.
func NewOrderCreatedRecord(id kernel.UUID, orderID kernel.UUID, operator string) (*HistoryRecord, error) {
	return newHistoryRecord(id, orderID, ActionOrderCreated,
		"order created", operator, nil, time.Now().UTC())
}

// RestoreHistoryRecord reconstructs a history entry from persistence.
func RestoreHistoryRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	action string,
	description string,
	operator string,
	changes *StatusChange,
	createdAt time.Time,
) (*HistoryRecord, error) {
	return newHistoryRecord(id, orderID, action, description, operator, changes, createdAt)
}

func newHistoryRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	action string,
	description string,
	operator string,
	changes *StatusChange,
	createdAt time.Time,
) (*HistoryRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}
	if operator == "" {
		return nil, errs.NewValueIsRequiredError("operator")
	}

	var copiedChanges *StatusChange
	if changes != nil {
		copied := *changes
		copiedChanges = &copied
	}

	return &HistoryRecord{
		id:            id,
		orderID:       orderID,
		action:        action,
		description:   description,
		operator:      operator,
		changes:       copiedChanges,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was built through a constructor.
func (h *HistoryRecord) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (h *HistoryRecord) ID() kernel.UUID {
	return h.id
}

// OrderID returns the identifier of the order the record belongs to.
func (h *HistoryRecord) OrderID() kernel.UUID {
	return h.orderID
}

// Action returns the action tag, e.g. "status_changed".
func (h *HistoryRecord) Action() string {
	return h.action
}

// Description returns the human sentence describing the event.
func (h *HistoryRecord) Description() string {
	return h.description
}

// Operator returns the identity string of the actor.
func (h *HistoryRecord) Operator() string {
	return h.operator
}

// Changes returns the structured status-change payload, or nil for
// non-status actions.
func (h *HistoryRecord) Changes() *StatusChange {
	if h.changes == nil {
		return nil
	}
	copied := *h.changes
	return &copied
}

// CreatedAt returns the record's creation time.
func (h *HistoryRecord) CreatedAt() time.Time {
	return h.createdAt
}
