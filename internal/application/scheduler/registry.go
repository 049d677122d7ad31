package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// Allocator places an activity on one equipment category. Each category has
// one allocator owning its physical resources; the registry resolves the
// allocator for a declared equipment type instead of dispatching by name.
type Allocator interface {
	Type() equipment.Type

	// Allocate searches the window backward for the latest feasible
	// placement, commits the occupancies and returns them. A nil error
	// guarantees the commit happened; callers undo with the release
	// operations.
	Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error)

	ReleaseByActivity(orderID, requestID, activityID int) int
	ReleaseByRequest(orderID, requestID int) int
	ReleaseByOrder(orderID int) int
	ReleaseFinishedBefore(now time.Time) int

	Agenda() []AgendaEntry
}

// AgendaEntry is one ledger occupancy tagged with its resource, used by the
// reporting surface
type AgendaEntry struct {
	Resource      string
	EquipmentType equipment.Type
	Occupancy     equipment.Occupancy
}

// UnknownTypeError reports an activity declaring an equipment category no
// allocator was registered for
type UnknownTypeError struct {
	EquipmentType equipment.Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no allocator registered for equipment type %s", e.EquipmentType)
}

// Registry maps equipment categories to their allocators
type Registry struct {
	allocators map[equipment.Type]Allocator
}

// NewRegistry creates an empty allocator registry
func NewRegistry() *Registry {
	return &Registry{allocators: make(map[equipment.Type]Allocator)}
}

// Register binds an allocator to its equipment category, replacing any
// previous binding
func (r *Registry) Register(a Allocator) {
	r.allocators[a.Type()] = a
}

// Lookup resolves the allocator of an equipment category
func (r *Registry) Lookup(t equipment.Type) (Allocator, error) {
	a, ok := r.allocators[t]
	if !ok {
		return nil, &UnknownTypeError{EquipmentType: t}
	}
	return a, nil
}

// ReleaseByActivity removes one activity's occupancies across every category
func (r *Registry) ReleaseByActivity(orderID, requestID, activityID int) int {
	total := 0
	for _, a := range r.allocators {
		total += a.ReleaseByActivity(orderID, requestID, activityID)
	}
	return total
}

// ReleaseByRequest removes one request's occupancies across every category
func (r *Registry) ReleaseByRequest(orderID, requestID int) int {
	total := 0
	for _, a := range r.allocators {
		total += a.ReleaseByRequest(orderID, requestID)
	}
	return total
}

// ReleaseByOrder removes one order's occupancies across every category
func (r *Registry) ReleaseByOrder(orderID int) int {
	total := 0
	for _, a := range r.allocators {
		total += a.ReleaseByOrder(orderID)
	}
	return total
}

// ReleaseFinishedBefore sweeps already-finished occupancies from every ledger
func (r *Registry) ReleaseFinishedBefore(now time.Time) int {
	total := 0
	for _, a := range r.allocators {
		total += a.ReleaseFinishedBefore(now)
	}
	return total
}

// Agenda collects every committed occupancy across all categories, ordered by
// start time then resource name
func (r *Registry) Agenda() []AgendaEntry {
	var out []AgendaEntry
	for _, a := range r.allocators {
		out = append(out, a.Agenda()...)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Occupancy.Window.Start, out[j].Occupancy.Window.Start
		if si.Equal(sj) {
			return out[i].Resource < out[j].Resource
		}
		return si.Before(sj)
	})
	return out
}
