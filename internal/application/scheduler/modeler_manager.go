package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// ModelerManager places shaping activities on bread modelers. Quantity is a
// unit count here, not grams.
type ModelerManager struct {
	modelers []*equipment.Modeler
	step     time.Duration
	log      *logrus.Entry
}

// NewModelerManager creates the allocator owning the modelers
func NewModelerManager(modelers []*equipment.Modeler, step time.Duration) *ModelerManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &ModelerManager{
		modelers: modelers,
		step:     step,
		log:      logrus.WithField("allocator", string(equipment.TypeModelers)),
	}
}

func (m *ModelerManager) Type() equipment.Type { return equipment.TypeModelers }

func (m *ModelerManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	candidates := eligibleByFIP(m.modelers, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, modeler := range candidates {
			if modeler.HoldsQuantity(act.Quantity()) != nil {
				continue
			}
			if len(modeler.Ledger().Overlapping(candidate)) > 0 {
				continue
			}
			modeler.Ledger().Add(newOccupancy(act, equipment.WholeUnit, act.Quantity(), equipment.Settings{}, candidate))
			placements = []schedule.Placement{newPlacement(modeler, candidate)}
			m.log.WithFields(logrus.Fields{
				"modeler":  modeler.Name(),
				"activity": act.SpecID(),
				"window":   candidate.String(),
			}).Debug("modeler allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeModelers,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *ModelerManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.modelers, orderID, requestID, activityID)
}

func (m *ModelerManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.modelers, orderID, requestID)
}

func (m *ModelerManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.modelers, orderID)
}

func (m *ModelerManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.modelers, now)
}

func (m *ModelerManager) Agenda() []AgendaEntry {
	return agendaOf(m.modelers)
}
