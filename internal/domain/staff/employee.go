package staff

import (
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// Profession is the professional type an activity may require
type Profession string

const (
	ProfessionBaker        Profession = "BAKER"
	ProfessionConfectioner Profession = "CONFECTIONER"
	ProfessionCook         Profession = "COOK"
	ProfessionAssistant    Profession = "ASSISTANT"
)

// Occupation is one committed engagement on an employee's ledger
type Occupation struct {
	OrderID    int
	RequestID  int
	ActivityID int
	SpecID     int
	Window     shared.Window
}

// Employee models one member of the production staff: contract hours, break
// window, recurring day-off rules and the occupation ledger used for
// availability checks during scheduling.
type Employee struct {
	id          int
	name        string
	profession  Profession
	fip         int
	weeklyHours int
	shiftStart  time.Duration
	shiftEnd    time.Duration
	breakStart  time.Duration
	breakLength time.Duration
	dayOffs     []DayOffRule
	occupations []Occupation
}

// NewEmployee creates an employee. Shift and break offsets are measured from
// midnight of the working day; shifts must start and end on the same day
// (shiftStart < shiftEnd), overnight shifts are not modeled.
func NewEmployee(id int, name string, profession Profession, fip, weeklyHours int,
	shiftStart, shiftEnd, breakStart, breakLength time.Duration, dayOffs []DayOffRule) *Employee {
	return &Employee{
		id:          id,
		name:        name,
		profession:  profession,
		fip:         fip,
		weeklyHours: weeklyHours,
		shiftStart:  shiftStart,
		shiftEnd:    shiftEnd,
		breakStart:  breakStart,
		breakLength: breakLength,
		dayOffs:     dayOffs,
		occupations: make([]Occupation, 0),
	}
}

func (e *Employee) ID() int                { return e.id }
func (e *Employee) Name() string           { return e.name }
func (e *Employee) Profession() Profession { return e.profession }
func (e *Employee) FIP() int               { return e.fip }
func (e *Employee) WeeklyHours() int       { return e.weeklyHours }

// Occupations returns a copy of the committed engagements
func (e *Employee) Occupations() []Occupation {
	out := make([]Occupation, len(e.occupations))
	copy(out, e.occupations)
	return out
}

// OnDayOff reports whether any day-off rule grants the given date off
func (e *Employee) OnDayOff(date time.Time) bool {
	for _, rule := range e.dayOffs {
		if rule.AppliesTo(date) {
			return true
		}
	}
	return false
}

// Available reports whether the employee can take an engagement over w,
// checking day-off rules, shift bounds, the break window and occupation
// overlap. The returned reason names the first failed check.
func (e *Employee) Available(w shared.Window) (bool, string) {
	if e.OnDayOff(w.Start) || e.OnDayOff(w.End) {
		return false, "day off"
	}

	midnight := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, w.Start.Location())
	shiftStart := midnight.Add(e.shiftStart)
	shiftEnd := midnight.Add(e.shiftEnd)
	if w.Start.Before(shiftStart) || w.End.After(shiftEnd) {
		return false, "outside shift"
	}

	if e.breakLength > 0 {
		breakStart := midnight.Add(e.breakStart)
		breakEnd := breakStart.Add(e.breakLength)
		if w.Start.Before(breakEnd) && breakStart.Before(w.End) {
			return false, "break window"
		}
	}

	for _, occ := range e.occupations {
		if occ.Window.Overlaps(w) {
			return false, "already engaged"
		}
	}
	return true, ""
}

// EngagedOn reports whether the employee already holds work on the request
func (e *Employee) EngagedOn(orderID, requestID int) bool {
	for _, occ := range e.occupations {
		if occ.OrderID == orderID && occ.RequestID == requestID {
			return true
		}
	}
	return false
}

// Assign commits an engagement after re-validating availability
func (e *Employee) Assign(occ Occupation) error {
	if ok, reason := e.Available(occ.Window); !ok {
		return &UnavailableError{Employee: e.name, Window: occ.Window, Reason: reason}
	}
	e.occupations = append(e.occupations, occ)
	return nil
}

// ReleaseByActivity removes the engagements of one activity
func (e *Employee) ReleaseByActivity(orderID, requestID, activityID int) int {
	return e.release(func(o Occupation) bool {
		return o.OrderID == orderID && o.RequestID == requestID && o.ActivityID == activityID
	})
}

// ReleaseByRequest removes every engagement on one production request
func (e *Employee) ReleaseByRequest(orderID, requestID int) int {
	return e.release(func(o Occupation) bool {
		return o.OrderID == orderID && o.RequestID == requestID
	})
}

// ReleaseByOrder removes every engagement on one order group
func (e *Employee) ReleaseByOrder(orderID int) int {
	return e.release(func(o Occupation) bool {
		return o.OrderID == orderID
	})
}

func (e *Employee) release(match func(Occupation) bool) int {
	kept := e.occupations[:0]
	removed := 0
	for _, o := range e.occupations {
		if match(o) {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	e.occupations = kept
	return removed
}
