package scheduler

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// DefaultStep is the backward-search decrement applied between placement
// attempts when none is configured.
const DefaultStep = time.Minute

// searchBackward anchors a candidate window of the given duration at the end
// of the search range and walks it backward in fixed steps until try accepts
// a candidate or the range is exhausted. This yields the latest feasible
// window, the deadline-first strategy every allocator shares.
func searchBackward(window shared.Window, duration, step time.Duration,
	try func(candidate shared.Window) bool) (shared.Window, bool) {

	end := window.End
	for !end.Add(-duration).Before(window.Start) {
		candidate := shared.Window{Start: end.Add(-duration), End: end}
		if try(candidate) {
			return candidate, true
		}
		end = end.Add(-step)
	}
	return shared.Window{}, false
}

// eligibleByFIP filters a manager's resources to the activity's eligible set
// and orders them ascending by priority weight. The sort is stable: equal
// weights preserve catalog order.
func eligibleByFIP[T equipment.Resource](resources []T, spec *schedule.ActivitySpec) []T {
	names := spec.EligibleEquipment[resources2Type(resources)]
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}

	out := make([]T, 0, len(resources))
	for _, r := range resources {
		if len(allowed) == 0 || allowed[r.Name()] {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return spec.FIPFor(out[i].Name()) < spec.FIPFor(out[j].Name())
	})
	return out
}

func resources2Type[T equipment.Resource](resources []T) equipment.Type {
	if len(resources) == 0 {
		return ""
	}
	return resources[0].Type()
}

// newOccupancy stamps a ledger entry for an activity's reservation
func newOccupancy(act *schedule.Activity, subUnit int, quantity float64,
	settings equipment.Settings, w shared.Window) equipment.Occupancy {
	return equipment.Occupancy{
		ID:         uuid.New().String(),
		OrderID:    act.OrderID(),
		RequestID:  act.RequestID(),
		ActivityID: act.ID(),
		ItemID:     act.ItemID(),
		Quantity:   quantity,
		SubUnit:    subUnit,
		Settings:   settings,
		Window:     w,
	}
}

// newPlacement records the committed reservation returned to the activity
func newPlacement(r equipment.Resource, w shared.Window) schedule.Placement {
	return schedule.Placement{
		OccupancyID:   uuid.New().String(),
		ResourceID:    r.ID(),
		ResourceName:  r.Name(),
		EquipmentType: r.Type(),
		Window:        w,
	}
}

func releaseByActivity[T equipment.Resource](resources []T, orderID, requestID, activityID int) int {
	total := 0
	for _, r := range resources {
		total += r.Ledger().ReleaseByActivity(orderID, requestID, activityID)
	}
	return total
}

func releaseByRequest[T equipment.Resource](resources []T, orderID, requestID int) int {
	total := 0
	for _, r := range resources {
		total += r.Ledger().ReleaseByRequest(orderID, requestID)
	}
	return total
}

func releaseByOrder[T equipment.Resource](resources []T, orderID int) int {
	total := 0
	for _, r := range resources {
		total += r.Ledger().ReleaseByOrder(orderID)
	}
	return total
}

func releaseFinishedBefore[T equipment.Resource](resources []T, now time.Time) int {
	total := 0
	for _, r := range resources {
		total += r.Ledger().ReleaseFinishedBefore(now)
	}
	return total
}

func agendaOf[T equipment.Resource](resources []T) []AgendaEntry {
	var out []AgendaEntry
	for _, r := range resources {
		for _, occ := range r.Ledger().Agenda() {
			out = append(out, AgendaEntry{
				Resource:      r.Name(),
				EquipmentType: r.Type(),
				Occupancy:     occ,
			})
		}
	}
	return out
}
