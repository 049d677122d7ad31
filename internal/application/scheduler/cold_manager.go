package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// ColdManager places cold-storage holds. A chamber admits many items up to
// its aggregate box capacity, all sharing one temperature.
type ColdManager struct {
	chambers []*equipment.ColdChamber
	step     time.Duration
	log      *logrus.Entry
}

// NewColdManager creates the allocator owning the cold chambers
func NewColdManager(chambers []*equipment.ColdChamber, step time.Duration) *ColdManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &ColdManager{
		chambers: chambers,
		step:     step,
		log:      logrus.WithField("allocator", string(equipment.TypeColdStorage)),
	}
}

func (m *ColdManager) Type() equipment.Type { return equipment.TypeColdStorage }

func (m *ColdManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, ok := act.Spec().SettingsFor(equipment.TypeColdStorage)
	if !ok || settings.Temperature == nil {
		return nil, &schedule.ConfigMissingError{ActivityID: act.SpecID(), EquipmentType: equipment.TypeColdStorage}
	}

	candidates := eligibleByFIP(m.chambers, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, chamber := range candidates {
			if chamber.SupportsSettings(settings) != nil {
				continue
			}
			if !chamber.Ledger().SettingsCompatible(candidate, settings) {
				continue
			}
			if !chamber.Ledger().HasCapacity(candidate, act.Quantity(), chamber.BoxesMax()) {
				continue
			}
			chamber.Ledger().Add(newOccupancy(act, equipment.WholeUnit, act.Quantity(), settings, candidate))
			placements = []schedule.Placement{newPlacement(chamber, candidate)}
			m.log.WithFields(logrus.Fields{
				"chamber":  chamber.Name(),
				"activity": act.SpecID(),
				"window":   candidate.String(),
			}).Debug("cold storage allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeColdStorage,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *ColdManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.chambers, orderID, requestID, activityID)
}

func (m *ColdManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.chambers, orderID, requestID)
}

func (m *ColdManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.chambers, orderID)
}

func (m *ColdManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.chambers, now)
}

func (m *ColdManager) Agenda() []AgendaEntry {
	return agendaOf(m.chambers)
}
