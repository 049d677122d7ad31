package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// OvenManager places baking activities on oven levels. It tries to merge into
// levels already holding the same item at exactly the same window before
// claiming free levels, and commits all levels of a batch atomically.
type OvenManager struct {
	ovens []*equipment.Oven
	step  time.Duration
	log   *logrus.Entry
}

// NewOvenManager creates the allocator owning the oven fleet
func NewOvenManager(ovens []*equipment.Oven, step time.Duration) *OvenManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &OvenManager{
		ovens: ovens,
		step:  step,
		log:   logrus.WithField("allocator", string(equipment.TypeOvens)),
	}
}

func (m *OvenManager) Type() equipment.Type { return equipment.TypeOvens }

// Allocate walks the window backward looking for the latest slot where one
// oven can take the whole batch, merged levels included
func (m *OvenManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, ok := act.Spec().SettingsFor(equipment.TypeOvens)
	if !ok || settings.Temperature == nil {
		return nil, &schedule.ConfigMissingError{ActivityID: act.SpecID(), EquipmentType: equipment.TypeOvens}
	}

	candidates := eligibleByFIP(m.ovens, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, oven := range candidates {
			if oven.SupportsSettings(settings) != nil {
				continue
			}
			if m.tryOven(oven, act, settings, candidate) {
				placements = []schedule.Placement{newPlacement(oven, candidate)}
				return true
			}
		}
		return false
	})
	if !found {
		m.log.WithFields(logrus.Fields{
			"activity": act.SpecID(),
			"item":     act.ItemID(),
			"quantity": act.Quantity(),
		}).Debug("no oven window found")
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeOvens,
			Window:        window,
		}
	}
	return placements, nil
}

type levelAllocation struct {
	level    int
	quantity float64
}

// tryOven plans the level split for one oven at one candidate window and
// commits it only if the whole quantity fits
func (m *OvenManager) tryOven(oven *equipment.Oven, act *schedule.Activity,
	settings equipment.Settings, w shared.Window) bool {

	remaining := act.Quantity()
	var plan []levelAllocation

	mergeRoom := oven.SharedLevelRoom(act.ItemID(), w, settings)
	for level := 0; level < oven.Levels() && remaining > 0; level++ {
		room, ok := mergeRoom[level]
		if !ok {
			continue
		}
		take := room
		if remaining < take {
			take = remaining
		}
		plan = append(plan, levelAllocation{level: level, quantity: take})
		remaining -= take
	}

	if remaining > 0 {
		free := oven.FreeLevels(w, settings)
		needed := oven.LevelsNeeded(remaining)
		if len(free) < needed {
			return false
		}
		for i := 0; i < needed; i++ {
			take := oven.GramsPerLevel()
			if remaining < take {
				take = remaining
			}
			plan = append(plan, levelAllocation{level: free[i], quantity: take})
			remaining -= take
		}
	}
	if remaining > 0 {
		return false
	}

	for _, p := range plan {
		oven.Ledger().Add(newOccupancy(act, p.level, p.quantity, settings, w))
	}
	m.log.WithFields(logrus.Fields{
		"oven":     oven.Name(),
		"activity": act.SpecID(),
		"levels":   len(plan),
		"window":   w.String(),
	}).Debug("oven allocation committed")
	return true
}

func (m *OvenManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.ovens, orderID, requestID, activityID)
}

func (m *OvenManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.ovens, orderID, requestID)
}

func (m *OvenManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.ovens, orderID)
}

func (m *OvenManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.ovens, now)
}

func (m *OvenManager) Agenda() []AgendaEntry {
	return agendaOf(m.ovens)
}
