package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
)

// FileOrderLog writes the allocation audit trail as plaintext files, one per
// production request. Each line is pipe-delimited:
//
//	order | request | activity | item | activity name | resource | start | end
//
// Rollback removes the request's file; removing a missing file is a no-op.
type FileOrderLog struct {
	dir string
	log *logrus.Entry
}

// NewFileOrderLog creates the sink, ensuring the target directory exists
func NewFileOrderLog(dir string) (*FileOrderLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create order log directory: %w", err)
	}
	return &FileOrderLog{
		dir: dir,
		log: logrus.WithField("component", "order-log"),
	}, nil
}

func (f *FileOrderLog) path(orderID, requestID int) string {
	return filepath.Join(f.dir, fmt.Sprintf("order_%d_request_%d.log", orderID, requestID))
}

// Record appends one audit line for a committed placement
func (f *FileOrderLog) Record(rec scheduler.AllocationRecord) error {
	line := fmt.Sprintf("%d | %d | %d | %s | %s | %s | %s | %s\n",
		rec.OrderID, rec.RequestID, rec.ActivityID,
		rec.ItemName, rec.ActivityName, rec.ResourceName,
		rec.Placement.Window.Start.Format("15:04"),
		rec.Placement.Window.End.Format("15:04"))

	file, err := os.OpenFile(f.path(rec.OrderID, rec.RequestID),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open order log: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write order log: %w", err)
	}
	return nil
}

// RecordFailure appends one line to the request's error file. Error files
// survive rollback so failed runs stay diagnosable.
func (f *FileOrderLog) RecordFailure(orderID, requestID int, cause error) error {
	line := fmt.Sprintf("%s | %d | %d | %s\n",
		time.Now().Format("2006-01-02 15:04:05"), orderID, requestID, cause)

	path := filepath.Join(f.dir, fmt.Sprintf("order_%d_request_%d_errors.log", orderID, requestID))
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open order error log: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write order error log: %w", err)
	}
	return nil
}

// Discard removes the request's log file
func (f *FileOrderLog) Discard(orderID, requestID int) error {
	err := os.Remove(f.path(orderID, requestID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove order log: %w", err)
	}
	if os.IsNotExist(err) {
		f.log.WithFields(logrus.Fields{
			"order":   orderID,
			"request": requestID,
		}).Debug("no order log to discard")
	}
	return nil
}
