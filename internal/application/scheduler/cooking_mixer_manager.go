package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// CookingMixerManager places hot-mix activities. Same single-batch model as
// plain mixers, with a cooking temperature validated against the machine.
type CookingMixerManager struct {
	mixers []*equipment.CookingMixer
	step   time.Duration
	log    *logrus.Entry
}

// NewCookingMixerManager creates the allocator owning the cooking-mixer fleet
func NewCookingMixerManager(mixers []*equipment.CookingMixer, step time.Duration) *CookingMixerManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &CookingMixerManager{
		mixers: mixers,
		step:   step,
		log:    logrus.WithField("allocator", string(equipment.TypeCookingMixers)),
	}
}

func (m *CookingMixerManager) Type() equipment.Type { return equipment.TypeCookingMixers }

func (m *CookingMixerManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, _ := act.Spec().SettingsFor(equipment.TypeCookingMixers)
	candidates := eligibleByFIP(m.mixers, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, mixer := range candidates {
			if mixer.HoldsQuantity(act.Quantity()) != nil {
				continue
			}
			if mixer.SupportsSettings(settings) != nil {
				continue
			}
			if len(mixer.Ledger().Overlapping(candidate)) > 0 {
				continue
			}
			mixer.Ledger().Add(newOccupancy(act, equipment.WholeUnit, act.Quantity(), settings, candidate))
			placements = []schedule.Placement{newPlacement(mixer, candidate)}
			m.log.WithFields(logrus.Fields{
				"mixer":    mixer.Name(),
				"activity": act.SpecID(),
				"window":   candidate.String(),
			}).Debug("cooking mixer allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeCookingMixers,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *CookingMixerManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.mixers, orderID, requestID, activityID)
}

func (m *CookingMixerManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.mixers, orderID, requestID)
}

func (m *CookingMixerManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.mixers, orderID)
}

func (m *CookingMixerManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.mixers, now)
}

func (m *CookingMixerManager) Agenda() []AgendaEntry {
	return agendaOf(m.mixers)
}
