package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// ScaleManager places weighing activities. A weighing claims the whole scale
// and the quantity must fall inside the scale's readable range.
type ScaleManager struct {
	scales []*equipment.Scale
	step   time.Duration
	log    *logrus.Entry
}

// NewScaleManager creates the allocator owning the scales
func NewScaleManager(scales []*equipment.Scale, step time.Duration) *ScaleManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &ScaleManager{
		scales: scales,
		step:   step,
		log:    logrus.WithField("allocator", string(equipment.TypeScales)),
	}
}

func (m *ScaleManager) Type() equipment.Type { return equipment.TypeScales }

func (m *ScaleManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	candidates := eligibleByFIP(m.scales, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, scale := range candidates {
			if scale.Reads(act.Quantity()) != nil {
				continue
			}
			if len(scale.Ledger().Overlapping(candidate)) > 0 {
				continue
			}
			scale.Ledger().Add(newOccupancy(act, equipment.WholeUnit, act.Quantity(), equipment.Settings{}, candidate))
			placements = []schedule.Placement{newPlacement(scale, candidate)}
			m.log.WithFields(logrus.Fields{
				"scale":    scale.Name(),
				"activity": act.SpecID(),
				"window":   candidate.String(),
			}).Debug("scale allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeScales,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *ScaleManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.scales, orderID, requestID, activityID)
}

func (m *ScaleManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.scales, orderID, requestID)
}

func (m *ScaleManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.scales, orderID)
}

func (m *ScaleManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.scales, now)
}

func (m *ScaleManager) Agenda() []AgendaEntry {
	return agendaOf(m.scales)
}
