package order

import (
	"errors"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/pkg/errs"
)

// ErrFlowRecordIsNotConstructed is returned when a FlowRecord was not created
// through NewFlowRecord or RestoreFlowRecord.
var ErrFlowRecordIsNotConstructed = errors.New(
	"FlowRecord must be created via NewFlowRecord or RestoreFlowRecord",
)

// FlowRecord is the immutable audit entry written for every executed status
// transition. Records are append-only and read back ascending by creation
// time; they exist exclusively to answer "what did the status do".
type FlowRecord struct {
	id      kernel.UUID
	orderID kernel.UUID

	// fromStatus is nil only for an order's creation event; every transition
	// recorded by the transitioner has a source status.
	fromStatus *Status
	toStatus   Status

	operator  string
	remark    string
	createdAt time.Time

	isConstructed bool
}

// NewFlowRecord creates the audit entry for one executed transition.
// fromStatus may be nil for a creation event.
func NewFlowRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	operator string,
	remark string,
) (*FlowRecord, error) {
	return newFlowRecord(id, orderID, fromStatus, toStatus, operator, remark, time.Now().UTC())
}

// RestoreFlowRecord reconstructs a flow record from persistence.
func RestoreFlowRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	operator string,
	remark string,
	createdAt time.Time,
) (*FlowRecord, error) {
	return newFlowRecord(id, orderID, fromStatus, toStatus, operator, remark, createdAt)
}

func newFlowRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	operator string,
	remark string,
	createdAt time.Time,
) (*FlowRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}
	if operator == "" {
		return nil, errs.NewValueIsRequiredError("operator")
	}

	var from *Status
	if fromStatus != nil {
		copied := *fromStatus
		from = &copied
	}

	return &FlowRecord{
		id:            id,
		orderID:       orderID,
		fromStatus:    from,
		toStatus:      toStatus,
		operator:      operator,
		remark:        remark,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was built through a constructor.
func (f *FlowRecord) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlowRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (f *FlowRecord) ID() kernel.UUID {
	return f.id
}

// OrderID returns the identifier of the order the record belongs to.
func (f *FlowRecord) OrderID() kernel.UUID {
	return f.orderID
}

// FromStatus returns the source status, or nil for a creation event.
func (f *FlowRecord) FromStatus() *Status {
	if f.fromStatus == nil {
		return nil
	}
	copied := *f.fromStatus
	return &copied
}

// ToStatus returns the status the order moved into.
func (f *FlowRecord) ToStatus() Status {
	return f.toStatus
}

// Operator returns the identity string of the actor, opaque to this subsystem.
func (f *FlowRecord) Operator() string {
	return f.operator
}

// Remark returns the free-text note attached to the transition.
func (f *FlowRecord) Remark() string {
	return f.remark
}

// CreatedAt returns the record's creation time.
func (f *FlowRecord) CreatedAt() time.Time {
	return f.createdAt
}
