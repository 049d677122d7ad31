package scheduler

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// StaffManager engages employees on allocated activities. Selection prefers
// people already working on the same request, then ascending priority weight;
// ties keep roster order. Engagement is all-or-nothing: if fewer employees
// are free than the activity requires, none are committed.
type StaffManager struct {
	roster []*staff.Employee
	log    *logrus.Entry
}

// NewStaffManager creates the manager owning the staff roster
func NewStaffManager(roster []*staff.Employee) *StaffManager {
	return &StaffManager{
		roster: roster,
		log:    logrus.WithField("manager", "staff"),
	}
}

// Roster returns the managed employees
func (m *StaffManager) Roster() []*staff.Employee {
	out := make([]*staff.Employee, len(m.roster))
	copy(out, m.roster)
	return out
}

// Eligible filters the roster to the given professions, in roster order. An
// empty profession list admits everyone.
func (m *StaffManager) Eligible(professions []staff.Profession) []*staff.Employee {
	if len(professions) == 0 {
		return m.Roster()
	}
	allowed := make(map[staff.Profession]bool, len(professions))
	for _, p := range professions {
		allowed[p] = true
	}
	var out []*staff.Employee
	for _, e := range m.roster {
		if allowed[e.Profession()] {
			out = append(out, e)
		}
	}
	return out
}

// Engage selects and commits the activity's required crew over w. Candidates
// already engaged on the same request sort first, then by priority weight.
// On failure every partial engagement is released before returning.
func (m *StaffManager) Engage(act *schedule.Activity, w shared.Window) ([]*staff.Employee, error) {
	required := act.Spec().StaffCount
	if required <= 0 {
		return nil, nil
	}

	candidates := m.Eligible(act.Spec().StaffTypes)
	sort.SliceStable(candidates, func(i, j int) bool {
		ei := candidates[i].EngagedOn(act.OrderID(), act.RequestID())
		ej := candidates[j].EngagedOn(act.OrderID(), act.RequestID())
		if ei != ej {
			return ei
		}
		return m.weightOf(act, candidates[i]) < m.weightOf(act, candidates[j])
	})

	crew := make([]*staff.Employee, 0, required)
	for _, e := range candidates {
		if len(crew) == required {
			break
		}
		occ := staff.Occupation{
			OrderID:    act.OrderID(),
			RequestID:  act.RequestID(),
			ActivityID: act.ID(),
			SpecID:     act.SpecID(),
			Window:     w,
		}
		if err := e.Assign(occ); err != nil {
			continue
		}
		crew = append(crew, e)
	}

	if len(crew) < required {
		for _, e := range crew {
			e.ReleaseByActivity(act.OrderID(), act.RequestID(), act.ID())
		}
		m.log.WithFields(logrus.Fields{
			"activity":  act.SpecID(),
			"required":  required,
			"available": len(crew),
			"window":    w.String(),
		}).Debug("staff engagement failed")
		return nil, &schedule.StaffUnavailableError{
			ActivityID: act.SpecID(),
			Activity:   act.Name(),
			Required:   required,
			Available:  len(crew),
			Window:     w,
		}
	}
	return crew, nil
}

// weightOf resolves the employee's priority for this activity. The spec's
// per-profession weight wins over the employee's own, and unlisted
// professions rank last.
func (m *StaffManager) weightOf(act *schedule.Activity, e *staff.Employee) int {
	if fip, ok := act.Spec().StaffFIPs[e.Profession()]; ok {
		return fip
	}
	if e.FIP() > 0 {
		return e.FIP()
	}
	return 999
}

// ReleaseByActivity removes one activity's engagements across the roster
func (m *StaffManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	total := 0
	for _, e := range m.roster {
		total += e.ReleaseByActivity(orderID, requestID, activityID)
	}
	return total
}

// ReleaseByRequest removes one request's engagements across the roster
func (m *StaffManager) ReleaseByRequest(orderID, requestID int) int {
	total := 0
	for _, e := range m.roster {
		total += e.ReleaseByRequest(orderID, requestID)
	}
	return total
}

// ReleaseByOrder removes one order's engagements across the roster
func (m *StaffManager) ReleaseByOrder(orderID int) int {
	total := 0
	for _, e := range m.roster {
		total += e.ReleaseByOrder(orderID)
	}
	return total
}
