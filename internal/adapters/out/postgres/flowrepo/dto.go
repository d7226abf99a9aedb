// Package flowrepo implements persistence for the two append-only audit logs
// written alongside status changes: the dedicated status flow table and the
// broader order history table.
package flowrepo

import (
	"encoding/json"
	"time"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// FlowRecordDTO is the database representation of one status transition.
// FromStatus is nullable: a creation event has no source status.
type FlowRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus *string   `gorm:"type:varchar(32)"`
	ToStatus   string    `gorm:"type:varchar(32)"`
	Operator   string
	Remark     string
	CreatedAt  time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "order_status_flows".
func (FlowRecordDTO) TableName() string {
	return "order_status_flows"
}

// HistoryRecordDTO is the database representation of one order history entry.
// Changes holds the structured status-change payload as JSON and is null for
// non-status actions.
type HistoryRecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Action      string    `gorm:"type:varchar(64);index"`
	Description string
	Operator    string
	Changes     []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "order_histories".
func (HistoryRecordDTO) TableName() string {
	return "order_histories"
}

// flowFromDomain converts a flow record to its database representation.
func flowFromDomain(record *order.FlowRecord) FlowRecordDTO {
	var fromStatus *string
	if from := record.FromStatus(); from != nil {
		raw := from.String()
		fromStatus = &raw
	}

	return FlowRecordDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.OrderID().Bytes(),
		FromStatus: fromStatus,
		ToStatus:   record.ToStatus().String(),
		Operator:   record.Operator(),
		Remark:     record.Remark(),
		CreatedAt:  record.CreatedAt(),
	}
}

// flowToDomain reconstructs a flow record from its database representation.
func flowToDomain(dto FlowRecordDTO) (*order.FlowRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var fromStatus *order.Status
	if dto.FromStatus != nil {
		from := order.Status(*dto.FromStatus)
		fromStatus = &from
	}

	return order.RestoreFlowRecord(
		id, orderID, fromStatus, order.Status(dto.ToStatus),
		dto.Operator, dto.Remark, dto.CreatedAt)
}

// historyFromDomain converts a history entry to its database representation.
func historyFromDomain(record *order.HistoryRecord) (HistoryRecordDTO, error) {
	var changes []byte
	if c := record.Changes(); c != nil {
		raw, err := json.Marshal(c)
		if err != nil {
			return HistoryRecordDTO{}, err
		}
		changes = raw
	}

	return HistoryRecordDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		Action:      record.Action(),
		Description: record.Description(),
		Operator:    record.Operator(),
		Changes:     changes,
		CreatedAt:   record.CreatedAt(),
	}, nil
}
