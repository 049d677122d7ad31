package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// MixerManager places mixing and kneading activities. A mixer takes exactly
// one batch at a time, so feasibility is a free machine whose bowl range
// holds the quantity.
type MixerManager struct {
	mixers []*equipment.Mixer
	step   time.Duration
	log    *logrus.Entry
}

// NewMixerManager creates the allocator owning the mixer fleet
func NewMixerManager(mixers []*equipment.Mixer, step time.Duration) *MixerManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &MixerManager{
		mixers: mixers,
		step:   step,
		log:    logrus.WithField("allocator", string(equipment.TypeMixers)),
	}
}

func (m *MixerManager) Type() equipment.Type { return equipment.TypeMixers }

func (m *MixerManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, _ := act.Spec().SettingsFor(equipment.TypeMixers)
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
			}).Debug("mixer allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeMixers,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *MixerManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.mixers, orderID, requestID, activityID)
}

func (m *MixerManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.mixers, orderID, requestID)
}

func (m *MixerManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.mixers, orderID)
}

func (m *MixerManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.mixers, now)
}

func (m *MixerManager) Agenda() []AgendaEntry {
	return agendaOf(m.mixers)
}
