package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// DividerManager places dough-dividing activities on divider or
// divider-rounder machines, one batch per machine at a time
type DividerManager struct {
	dividers []*equipment.Divider
	step     time.Duration
	log      *logrus.Entry
}

// NewDividerManager creates the allocator owning the dividers
func NewDividerManager(dividers []*equipment.Divider, step time.Duration) *DividerManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &DividerManager{
		dividers: dividers,
		step:     step,
		log:      logrus.WithField("allocator", string(equipment.TypeDividers)),
	}
}

func (m *DividerManager) Type() equipment.Type { return equipment.TypeDividers }

func (m *DividerManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	candidates := eligibleByFIP(m.dividers, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, divider := range candidates {
			if divider.HoldsQuantity(act.Quantity()) != nil {
				continue
			}
			if len(divider.Ledger().Overlapping(candidate)) > 0 {
				continue
			}
			divider.Ledger().Add(newOccupancy(act, equipment.WholeUnit, act.Quantity(), equipment.Settings{}, candidate))
			placements = []schedule.Placement{newPlacement(divider, candidate)}
			m.log.WithFields(logrus.Fields{
				"divider":  divider.Name(),
				"activity": act.SpecID(),
				"window":   candidate.String(),
			}).Debug("divider allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeDividers,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *DividerManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.dividers, orderID, requestID, activityID)
}

func (m *DividerManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.dividers, orderID, requestID)
}

func (m *DividerManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.dividers, orderID)
}

func (m *DividerManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.dividers, now)
}

func (m *DividerManager) Agenda() []AgendaEntry {
	return agendaOf(m.dividers)
}
