package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// BenchManager places manual work on bench fractions. Bench activities carry
// no gram quantity; the spec declares how many fractions the work needs,
// defaulting to one.
type BenchManager struct {
	benches []*equipment.Bench
	step    time.Duration
	log     *logrus.Entry
}

// NewBenchManager creates the allocator owning the work benches
func NewBenchManager(benches []*equipment.Bench, step time.Duration) *BenchManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &BenchManager{
		benches: benches,
		step:    step,
		log:     logrus.WithField("allocator", string(equipment.TypeBenches)),
	}
}

func (m *BenchManager) Type() equipment.Type { return equipment.TypeBenches }

func (m *BenchManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, _ := act.Spec().SettingsFor(equipment.TypeBenches)
	needed := 1
	if settings.Fractions != nil && *settings.Fractions > 0 {
		needed = *settings.Fractions
	}

	candidates := eligibleByFIP(m.benches, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		for _, bench := range candidates {
			free := bench.FreeFractions(candidate)
			if len(free) < needed {
				continue
			}
			for i := 0; i < needed; i++ {
				bench.Ledger().Add(newOccupancy(act, free[i], 0, settings, candidate))
			}
			placements = []schedule.Placement{newPlacement(bench, candidate)}
			m.log.WithFields(logrus.Fields{
				"bench":     bench.Name(),
				"activity":  act.SpecID(),
				"fractions": needed,
				"window":    candidate.String(),
			}).Debug("bench allocation committed")
			return true
		}
		return false
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypeBenches,
			Window:        window,
		}
	}
	return placements, nil
}

func (m *BenchManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.benches, orderID, requestID, activityID)
}

func (m *BenchManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.benches, orderID, requestID)
}

func (m *BenchManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.benches, orderID)
}

func (m *BenchManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.benches, now)
}

func (m *BenchManager) Agenda() []AgendaEntry {
	return agendaOf(m.benches)
}
