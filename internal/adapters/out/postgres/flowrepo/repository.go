package flowrepo

import (
	"context"

	"ordermgmt/internal/core/domain/model/kernel"
	"ordermgmt/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusFlowRepository implements ports.StatusFlowRepository using GORM.
// Both tables are append-only; the repository exposes no update or delete.
type GormStatusFlowRepository struct {
	db *gorm.DB
}

// NewGormStatusFlowRepository creates a new GORM audit repository.
func NewGormStatusFlowRepository(db *gorm.DB) *GormStatusFlowRepository {
	return &GormStatusFlowRepository{db: db}
}

// AppendFlow saves one flow record.
func (r *GormStatusFlowRepository) AppendFlow(ctx context.Context, record *order.FlowRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := flowFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendHistory saves one history entry.
func (r *GormStatusFlowRepository) AppendHistory(ctx context.Context, record *order.HistoryRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := historyFromDomain(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetFlowsByOrder retrieves all flow records for an order, ascending by
// creation time.
func (r *GormStatusFlowRepository) GetFlowsByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.FlowRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []FlowRecordDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*order.FlowRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := flowToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
