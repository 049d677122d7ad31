package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// StoveManager places cooking activities on stove burners. A batch claims as
// many burners as its quantity requires on a single stove, atomically.
type StoveManager struct {
	stoves []*equipment.Stove
	step   time.Duration
	log    *logrus.Entry
}

// NewStoveManager creates the allocator owning the stoves
func NewStoveManager(stoves []*equipment.Stove, step time.Duration) *StoveManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &StoveManager{
		stoves: stoves,
		step:   step,
		log:    logrus.WithField("allocator", string(equipment.TypeStoves)),
	}
}

func (m *StoveManager) Type() equipment.Type { return equipment.TypeStoves }

func (m *StoveManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, _ := act.Spec().SettingsFor(equipment.TypeStoves)
	candidates := eligibleByFIP(m.stoves, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, stove := range candidates {
			if stove.SupportsSettings(settings) != nil {
				continue
			}
			if m.tryStove(stove, act, settings, candidate) {
				placements = []schedule.Placement{newPlacement(stove, candidate)}
				return true
			}
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeStoves,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *StoveManager) tryStove(stove *equipment.Stove, act *schedule.Activity,
	settings equipment.Settings, w shared.Window) bool {

	free := stove.FreeBurners(w, settings)
	needed := stove.BurnersNeeded(act.Quantity())
	if needed == 0 || len(free) < needed {
		return false
	}

	remaining := act.Quantity()
	for i := 0; i < needed; i++ {
		take := stove.GramsPerBurner()
		if remaining < take {
			take = remaining
		}
		stove.Ledger().Add(newOccupancy(act, free[i], take, settings, w))
		remaining -= take
	}
	m.log.WithFields(logrus.Fields{
		"stove":    stove.Name(),
		"activity": act.SpecID(),
		"burners":  needed,
		"window":   w.String(),
	}).Debug("stove allocation committed")
	return true
}

func (m *StoveManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.stoves, orderID, requestID, activityID)
}

func (m *StoveManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.stoves, orderID, requestID)
}

func (m *StoveManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.stoves, orderID)
}

func (m *StoveManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.stoves, now)
}

func (m *StoveManager) Agenda() []AgendaEntry {
	return agendaOf(m.stoves)
}
