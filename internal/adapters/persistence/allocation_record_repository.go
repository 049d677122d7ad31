package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
)

// GormAllocationRecordRepository persists the scheduler's audit trail using
// GORM. It implements the order log sink: records accumulate as placements
// commit and are discarded wholesale on rollback.
type GormAllocationRecordRepository struct {
	db *gorm.DB
}

// NewGormAllocationRecordRepository creates a new GORM allocation record repository
func NewGormAllocationRecordRepository(db *gorm.DB) *GormAllocationRecordRepository {
	return &GormAllocationRecordRepository{db: db}
}

// Record appends one audit row for a committed placement
func (r *GormAllocationRecordRepository) Record(rec scheduler.AllocationRecord) error {
	model := AllocationRecordModel{
		OrderID:      rec.OrderID,
		RequestID:    rec.RequestID,
		ActivityID:   rec.ActivityID,
		ItemName:     rec.ItemName,
		ActivityName: rec.ActivityName,
		ResourceName: rec.ResourceName,
		StartsAt:     rec.Placement.Window.Start,
		EndsAt:       rec.Placement.Window.End,
	}
	if err := r.db.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to record allocation: %w", err)
	}
	return nil
}

// Discard removes every audit row of one request; nothing to remove is a no-op
func (r *GormAllocationRecordRepository) Discard(orderID, requestID int) error {
	result := r.db.Where("order_id = ? AND request_id = ?", orderID, requestID).
		Delete(&AllocationRecordModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to discard allocation records: %w", result.Error)
	}
	return nil
}

// RecordFailure is a no-op: failure notes live on the file trail only
func (r *GormAllocationRecordRepository) RecordFailure(orderID, requestID int, cause error) error {
	return nil
}

// FindByRequest loads the audit rows of one request ordered by start time
func (r *GormAllocationRecordRepository) FindByRequest(orderID, requestID int) ([]AllocationRecordModel, error) {
	var models []AllocationRecordModel
	result := r.db.Where("order_id = ? AND request_id = ?", orderID, requestID).
		Order("starts_at").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load allocation records: %w", result.Error)
	}
	return models, nil
}
