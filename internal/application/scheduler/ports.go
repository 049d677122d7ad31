package scheduler

import (
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
)

// AllocationRecord is one audit line describing a committed placement, the
// order-level trace of what the scheduler decided
type AllocationRecord struct {
	OrderID      int
	RequestID    int
	ActivityID   int
	ItemName     string
	ActivityName string
	ResourceName string
	Placement    schedule.Placement
}

// OrderLogSink receives the allocation audit trail of an order. Records are
// appended as placements commit and discarded when the order rolls back.
// Failures go to a separate trail that rollback does not remove.
type OrderLogSink interface {
	Record(rec AllocationRecord) error
	Discard(orderID, requestID int) error
	RecordFailure(orderID, requestID int, cause error) error
}

// MultiLog fans the audit trail out to several sinks, stopping at the first
// failure
type MultiLog []OrderLogSink

func (m MultiLog) Record(rec AllocationRecord) error {
	for _, s := range m {
		if err := s.Record(rec); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiLog) Discard(orderID, requestID int) error {
	for _, s := range m {
		if err := s.Discard(orderID, requestID); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiLog) RecordFailure(orderID, requestID int, cause error) error {
	for _, s := range m {
		if err := s.RecordFailure(orderID, requestID, cause); err != nil {
			return err
		}
	}
	return nil
}

// ComandaSink persists the generated production comanda of an order
type ComandaSink interface {
	Save(c *recipe.Comanda) error
	Delete(orderID int) error
}
