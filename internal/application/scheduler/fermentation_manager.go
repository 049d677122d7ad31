package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// FermentationManager places proofing activities on cabinet tray levels. The
// chamber temperature is shared, so a cabinet only qualifies when every
// concurrent occupancy accepts the requested temperature.
type FermentationManager struct {
	cabinets []*equipment.FermentationCabinet
	step     time.Duration
	log      *logrus.Entry
}

// NewFermentationManager creates the allocator owning the fermentation cabinets
func NewFermentationManager(cabinets []*equipment.FermentationCabinet, step time.Duration) *FermentationManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &FermentationManager{
		cabinets: cabinets,
		step:     step,
		log:      logrus.WithField("allocator", string(equipment.TypeFermentationCabinets)),
	}
}

func (m *FermentationManager) Type() equipment.Type { return equipment.TypeFermentationCabinets }

func (m *FermentationManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, ok := act.Spec().SettingsFor(equipment.TypeFermentationCabinets)
	if !ok || settings.Temperature == nil {
		return nil, &schedule.ConfigMissingError{ActivityID: act.SpecID(), EquipmentType: equipment.TypeFermentationCabinets}
	}

	candidates := eligibleByFIP(m.cabinets, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, cabinet := range candidates {
			if cabinet.SupportsSettings(settings) != nil {
				continue
			}
			if m.tryCabinet(cabinet, act, settings, candidate) {
				placements = []schedule.Placement{newPlacement(cabinet, candidate)}
				return true
			}
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeFermentationCabinets,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *FermentationManager) tryCabinet(cabinet *equipment.FermentationCabinet,
	act *schedule.Activity, settings equipment.Settings, w shared.Window) bool {

	free := cabinet.FreeLevels(w, settings)
	needed := cabinet.LevelsNeeded(act.Quantity())
	if needed == 0 || len(free) < needed {
		return false
	}

	remaining := act.Quantity()
	for i := 0; i < needed; i++ {
		take := cabinet.GramsPerLevel()
		if remaining < take {
			take = remaining
		}
		cabinet.Ledger().Add(newOccupancy(act, free[i], take, settings, w))
		remaining -= take
	}
	m.log.WithFields(logrus.Fields{
		"cabinet":  cabinet.Name(),
		"activity": act.SpecID(),
		"levels":   needed,
		"window":   w.String(),
	}).Debug("fermentation allocation committed")
	return true
}

func (m *FermentationManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.cabinets, orderID, requestID, activityID)
}

func (m *FermentationManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.cabinets, orderID, requestID)
}

func (m *FermentationManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.cabinets, orderID)
}

func (m *FermentationManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.cabinets, now)
}

func (m *FermentationManager) Agenda() []AgendaEntry {
	return agendaOf(m.cabinets)
}
