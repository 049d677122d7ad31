package equipment

import (
	"sort"
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// WholeUnit marks an occupancy that claims the entire resource rather than
// one of its sub-units (levels, burners, baskets, fractions).
const WholeUnit = -1

// Occupancy is one committed reservation on a resource's ledger
type Occupancy struct {
	ID         string
	OrderID    int
	RequestID  int
	ActivityID int
	ItemID     int
	Quantity   float64
	SubUnit    int
	Settings   Settings
	Window     shared.Window
}

// Ledger is the in-memory occupancy record of a single physical resource.
// It is mutated only by the allocator that owns the resource; the scheduler
// processes one order at a time, so no locking is applied here.
type Ledger struct {
	entries []Occupancy
}

// NewLedger creates an empty occupancy ledger
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Occupancy, 0)}
}

// Entries returns a copy of all committed occupancies
func (l *Ledger) Entries() []Occupancy {
	out := make([]Occupancy, len(l.entries))
	copy(out, l.entries)
	return out
}

// Add commits an occupancy to the ledger
func (l *Ledger) Add(o Occupancy) {
	l.entries = append(l.entries, o)
}

// Overlapping returns the occupancies whose window intersects w
func (l *Ledger) Overlapping(w shared.Window) []Occupancy {
	var out []Occupancy
	for _, e := range l.entries {
		if e.Window.Overlaps(w) {
			out = append(out, e)
		}
	}
	return out
}

// SubUnitFree reports whether a sub-unit carries no overlapping occupancy in w
func (l *Ledger) SubUnitFree(subUnit int, w shared.Window) bool {
	for _, e := range l.entries {
		if e.SubUnit == subUnit && e.Window.Overlaps(w) {
			return false
		}
	}
	return true
}

// SubUnitSettingsCompatible reports whether every occupancy overlapping w on
// the given sub-unit accepts the requested settings
func (l *Ledger) SubUnitSettingsCompatible(subUnit int, w shared.Window, s Settings) bool {
	for _, e := range l.entries {
		if e.SubUnit == subUnit && e.Window.Overlaps(w) && !e.Settings.CompatibleWith(s) {
			return false
		}
	}
	return true
}

// SettingsCompatible reports whether every occupancy overlapping w, on any
// sub-unit, accepts the requested settings. Used by resources whose operating
// parameters apply to the whole machine.
func (l *Ledger) SettingsCompatible(w shared.Window, s Settings) bool {
	for _, e := range l.entries {
		if e.Window.Overlaps(w) && !e.Settings.CompatibleWith(s) {
			return false
		}
	}
	return true
}

// PeakQuantity returns the maximum aggregate quantity committed at any
// instant inside w, computed by sweeping the start timestamps of overlapping
// entries. The aggregate can only change at an entry boundary, so checking
// each overlapping start (plus the window start itself) covers every peak.
func (l *Ledger) PeakQuantity(w shared.Window) float64 {
	instants := []time.Time{w.Start}
	for _, e := range l.entries {
		if e.Window.Overlaps(w) && e.Window.Start.After(w.Start) {
			instants = append(instants, e.Window.Start)
		}
	}

	peak := 0.0
	for _, t := range instants {
		total := 0.0
		for _, e := range l.entries {
			if e.Window.Contains(t) {
				total += e.Quantity
			}
		}
		if total > peak {
			peak = total
		}
	}
	return peak
}

// HasCapacity reports whether adding quantity over w keeps the aggregate
// within capacity at every instant
func (l *Ledger) HasCapacity(w shared.Window, quantity, capacity float64) bool {
	return l.PeakQuantity(w)+quantity <= capacity
}

// SharedQuantity sums quantities already committed for the same item on the
// given sub-unit with an identical window. Merge-eligible occupancies must
// match the window exactly, never merely overlap.
func (l *Ledger) SharedQuantity(subUnit, itemID int, w shared.Window) float64 {
	total := 0.0
	for _, e := range l.entries {
		if e.SubUnit == subUnit && e.ItemID == itemID && e.Window.Equal(w) {
			total += e.Quantity
		}
	}
	return total
}

// ReleaseByActivity removes the occupancies of one activity and returns how
// many entries were removed
func (l *Ledger) ReleaseByActivity(orderID, requestID, activityID int) int {
	return l.release(func(e Occupancy) bool {
		return e.OrderID == orderID && e.RequestID == requestID && e.ActivityID == activityID
	})
}

// ReleaseByRequest removes every occupancy belonging to one production request
func (l *Ledger) ReleaseByRequest(orderID, requestID int) int {
	return l.release(func(e Occupancy) bool {
		return e.OrderID == orderID && e.RequestID == requestID
	})
}

// ReleaseByOrder removes every occupancy belonging to one order group
func (l *Ledger) ReleaseByOrder(orderID int) int {
	return l.release(func(e Occupancy) bool {
		return e.OrderID == orderID
	})
}

// ReleaseFinishedBefore sweeps occupancies whose end time has already passed
func (l *Ledger) ReleaseFinishedBefore(now time.Time) int {
	return l.release(func(e Occupancy) bool {
		return !e.Window.End.After(now)
	})
}

func (l *Ledger) release(match func(Occupancy) bool) int {
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if match(e) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return removed
}

// Agenda returns the entries ordered by start time, for reporting
func (l *Ledger) Agenda() []Occupancy {
	out := l.Entries()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Window.Start.Equal(out[j].Window.Start) {
			return out[i].SubUnit < out[j].SubUnit
		}
		return out[i].Window.Start.Before(out[j].Window.Start)
	})
	return out
}
