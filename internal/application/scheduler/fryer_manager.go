package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// FryerManager places frying activities on basket fractions. Oil temperature
// is shared per fryer, so concurrent occupancies must agree on it.
type FryerManager struct {
	fryers []*equipment.Fryer
	step   time.Duration
	log    *logrus.Entry
}

// NewFryerManager creates the allocator owning the fryers
func NewFryerManager(fryers []*equipment.Fryer, step time.Duration) *FryerManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &FryerManager{
		fryers: fryers,
		step:   step,
		log:    logrus.WithField("allocator", string(equipment.TypeFryers)),
	}
}

func (m *FryerManager) Type() equipment.Type { return equipment.TypeFryers }

func (m *FryerManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, ok := act.Spec().SettingsFor(equipment.TypeFryers)
	if !ok || settings.Temperature == nil {
		return nil, &schedule.ConfigMissingError{ActivityID: act.SpecID(), EquipmentType: equipment.TypeFryers}
	}

	candidates := eligibleByFIP(m.fryers, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, fryer := range candidates {
			if fryer.SupportsSettings(settings) != nil {
				continue
			}
			if m.tryFryer(fryer, act, settings, candidate) {
				placements = []schedule.Placement{newPlacement(fryer, candidate)}
				return true
			}
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeFryers,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *FryerManager) tryFryer(fryer *equipment.Fryer, act *schedule.Activity,
	settings equipment.Settings, w shared.Window) bool {

	free := fryer.FreeBaskets(w, settings)
	needed := fryer.BasketsNeeded(act.Quantity())
	if needed == 0 || len(free) < needed {
		return false
	}

	remaining := act.Quantity()
	for i := 0; i < needed; i++ {
		take := fryer.GramsPerBasket()
		if remaining < take {
			take = remaining
		}
		fryer.Ledger().Add(newOccupancy(act, free[i], take, settings, w))
		remaining -= take
	}
	m.log.WithFields(logrus.Fields{
		"fryer":    fryer.Name(),
		"activity": act.SpecID(),
		"baskets":  needed,
		"window":   w.String(),
	}).Debug("fryer allocation committed")
	return true
}

func (m *FryerManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.fryers, orderID, requestID, activityID)
}

func (m *FryerManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.fryers, orderID, requestID)
}

func (m *FryerManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.fryers, orderID)
}

func (m *FryerManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.fryers, now)
}

func (m *FryerManager) Agenda() []AgendaEntry {
	return agendaOf(m.fryers)
}
