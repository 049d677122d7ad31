package schedule

import (
	"fmt"
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// InvalidTransitionError reports an illegal activity state change
type InvalidTransitionError struct {
	ActivityID int
	From       Status
	To         Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("activity %d: cannot transition from %s to %s", e.ActivityID, e.From, e.To)
}

// NoWindowError reports that the backward search exhausted the journey
// window without finding a feasible placement
type NoWindowError struct {
	ActivityID    int
	Activity      string
	EquipmentType equipment.Type
	Window        shared.Window
}

func (e *NoWindowError) Error() string {
	if e.EquipmentType != "" {
		return fmt.Sprintf("no feasible window for activity %d (%s) on %s within %s",
			e.ActivityID, e.Activity, e.EquipmentType, e.Window)
	}
	return fmt.Sprintf("no feasible window for activity %d (%s) within %s",
		e.ActivityID, e.Activity, e.Window)
}

// ConfigMissingError reports an activity spec lacking the operating
// parameters its equipment category requires
type ConfigMissingError struct {
	ActivityID    int
	EquipmentType equipment.Type
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("activity %d: no equipment settings declared for %s", e.ActivityID, e.EquipmentType)
}

// StaffUnavailableError reports that fewer eligible employees were free than
// the activity requires
type StaffUnavailableError struct {
	ActivityID int
	Activity   string
	Required   int
	Available  int
	Window     shared.Window
}

func (e *StaffUnavailableError) Error() string {
	return fmt.Sprintf("activity %d (%s): only %d of %d required staff available during %s",
		e.ActivityID, e.Activity, e.Available, e.Required, e.Window)
}

// WaitExceededError reports a gap between consecutive activities beyond the
// declared maximum wait
type WaitExceededError struct {
	ActivityID int
	Activity   string
	Gap        time.Duration
	MaxWait    time.Duration
}

func (e *WaitExceededError) Error() string {
	return fmt.Sprintf("activity %d (%s): wait of %s to successor exceeds maximum %s",
		e.ActivityID, e.Activity, e.Gap, e.MaxWait)
}
