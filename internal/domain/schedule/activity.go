package schedule

import (
	"fmt"
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// Status tracks an activity through its allocation lifecycle
type Status string

const (
	StatusUnallocated Status = "UNALLOCATED"
	StatusAttempting  Status = "ATTEMPTING"
	StatusAllocated   Status = "ALLOCATED"
	StatusFailed      Status = "FAILED"
)

// Activity is one schedulable unit of production work within an order. The
// duration is resolved once at construction from the spec's quantity bands;
// allocation mutates the realized window, placements and staff.
//
// State machine:
//
//	UNALLOCATED -> ATTEMPTING -> ALLOCATED
//	                        \-> FAILED
type Activity struct {
	id        int
	spec      *ActivitySpec
	orderID   int
	requestID int
	itemID    int
	itemType  recipe.ItemType
	quantity  float64
	duration  time.Duration

	status     Status
	window     shared.Window
	placements []Placement
	crew       []*staff.Employee
}

// NewActivity instantiates an activity from its catalog spec, resolving the
// duration from the quantity bands. A quantity outside every band is a
// construction failure that surfaces to the order level.
func NewActivity(id, orderID, requestID, itemID int, itemType recipe.ItemType,
	quantity float64, spec *ActivitySpec) (*Activity, error) {

	duration, err := spec.Durations.DurationFor(quantity)
	if err != nil {
		return nil, fmt.Errorf("activity %d (%s): %w", spec.ID, spec.Name, err)
	}

	return &Activity{
		id:        id,
		spec:      spec,
		orderID:   orderID,
		requestID: requestID,
		itemID:    itemID,
		itemType:  itemType,
		quantity:  quantity,
		duration:  duration,
		status:    StatusUnallocated,
	}, nil
}

func (a *Activity) ID() int                   { return a.id }
func (a *Activity) Spec() *ActivitySpec       { return a.spec }
func (a *Activity) SpecID() int               { return a.spec.ID }
func (a *Activity) Name() string              { return a.spec.Name }
func (a *Activity) ItemName() string          { return a.spec.ItemName }
func (a *Activity) OrderID() int              { return a.orderID }
func (a *Activity) RequestID() int            { return a.requestID }
func (a *Activity) ItemID() int               { return a.itemID }
func (a *Activity) ItemType() recipe.ItemType { return a.itemType }
func (a *Activity) Quantity() float64         { return a.quantity }
func (a *Activity) Duration() time.Duration   { return a.duration }
func (a *Activity) Status() Status            { return a.status }
func (a *Activity) Allocated() bool           { return a.status == StatusAllocated }
func (a *Activity) Window() shared.Window     { return a.window }
func (a *Activity) MaxWait() *time.Duration   { return a.spec.MaxWait }

// Placements returns a copy of the committed equipment reservations
func (a *Activity) Placements() []Placement {
	out := make([]Placement, len(a.placements))
	copy(out, a.placements)
	return out
}

// Crew returns the employees engaged on this activity
func (a *Activity) Crew() []*staff.Employee {
	out := make([]*staff.Employee, len(a.crew))
	copy(out, a.crew)
	return out
}

// MarkAttempting transitions into the allocation attempt state
func (a *Activity) MarkAttempting() error {
	if a.status != StatusUnallocated && a.status != StatusFailed {
		return &InvalidTransitionError{ActivityID: a.id, From: a.status, To: StatusAttempting}
	}
	a.status = StatusAttempting
	return nil
}

// MarkAllocated records the realized window, equipment and crew
func (a *Activity) MarkAllocated(w shared.Window, placements []Placement, crew []*staff.Employee) error {
	if a.status != StatusAttempting {
		return &InvalidTransitionError{ActivityID: a.id, From: a.status, To: StatusAllocated}
	}
	a.status = StatusAllocated
	a.window = w
	a.placements = placements
	a.crew = crew
	return nil
}

// MarkFailed records that no feasible window was found
func (a *Activity) MarkFailed() error {
	if a.status != StatusAttempting {
		return &InvalidTransitionError{ActivityID: a.id, From: a.status, To: StatusFailed}
	}
	a.status = StatusFailed
	return nil
}

// Reset clears allocation state, used when an order rolls back
func (a *Activity) Reset() {
	a.status = StatusUnallocated
	a.window = shared.Window{}
	a.placements = nil
	a.crew = nil
}

// CheckWait validates the gap to the successor activity's realized start.
// A nil MaxWait is unbounded; a zero MaxWait demands the successor start at
// exactly this activity's end.
func (a *Activity) CheckWait(successorStart time.Time) error {
	if a.spec.MaxWait == nil || a.status != StatusAllocated {
		return nil
	}
	gap := successorStart.Sub(a.window.End)
	maxWait := *a.spec.MaxWait

	if maxWait == 0 {
		if gap != 0 {
			return &WaitExceededError{
				ActivityID: a.spec.ID, Activity: a.spec.Name,
				Gap: gap, MaxWait: maxWait,
			}
		}
		return nil
	}
	if gap > maxWait {
		return &WaitExceededError{
			ActivityID: a.spec.ID, Activity: a.spec.Name,
			Gap: gap, MaxWait: maxWait,
		}
	}
	return nil
}

func (a *Activity) String() string {
	return fmt.Sprintf("Activity[%d %s item=%d qty=%.0f status=%s]",
		a.spec.ID, a.spec.Name, a.itemID, a.quantity, a.status)
}
