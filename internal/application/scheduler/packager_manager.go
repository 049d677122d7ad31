package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// PackagerManager places wrapping activities. Packagers admit concurrent
// occupancies up to an aggregate gram capacity, and a single batch may be
// split across several machines when no one machine has enough headroom.
// The split follows priority order and commits atomically.
type PackagerManager struct {
	packagers []*equipment.Packager
	step      time.Duration
	log       *logrus.Entry
}

// NewPackagerManager creates the allocator owning the packaging machines
func NewPackagerManager(packagers []*equipment.Packager, step time.Duration) *PackagerManager {
	if step <= 0 {
		step = DefaultStep
	}
	return &PackagerManager{
		packagers: packagers,
		step:      step,
		log:       logrus.WithField("allocator", string(equipment.TypePackagers)),
	}
}

func (m *PackagerManager) Type() equipment.Type { return equipment.TypePackagers }

func (m *PackagerManager) Allocate(act *schedule.Activity, window shared.Window) ([]schedule.Placement, error) {
	settings, ok := act.Spec().SettingsFor(equipment.TypePackagers)
	if !ok || settings.Packaging == nil {
		return nil, &schedule.ConfigMissingError{ActivityID: act.SpecID(), EquipmentType: equipment.TypePackagers}
	}

	candidates := eligibleByFIP(m.packagers, act.Spec())

	var placements []schedule.Placement
	_, found := searchBackward(window, act.Duration(), m.step, func(candidate shared.Window) bool {
		placements = m.trySplit(candidates, act, settings, candidate)
		return placements != nil
	})
	if !found {
		return nil, &schedule.NoWindowError{
			ActivityID:    act.SpecID(),
			Activity:      act.Name(),
			EquipmentType: equipment.TypePackagers,
			Window:        window,
		}
	}
	return placements, nil
}

type packagerShare struct {
	machine  *equipment.Packager
	quantity float64
}

// trySplit plans the machine split at one candidate window and commits it
// only if the machines together absorb the whole quantity
func (m *PackagerManager) trySplit(candidates []*equipment.Packager, act *schedule.Activity,
	settings equipment.Settings, w shared.Window) []schedule.Placement {

	remaining := act.Quantity()
	var plan []packagerShare
	for _, p := range candidates {
		if remaining <= 0 {
			break
		}
		if p.SupportsSettings(settings) != nil {
			continue
		}
		room := p.Headroom(w)
		if room <= 0 {
			continue
		}
		take := room
		if remaining < take {
			take = remaining
		}
		plan = append(plan, packagerShare{machine: p, quantity: take})
		remaining -= take
	}
	if remaining > 0 {
		return nil
	}

	placements := make([]schedule.Placement, 0, len(plan))
	for _, share := range plan {
		share.machine.Ledger().Add(newOccupancy(act, equipment.WholeUnit, share.quantity, settings, w))
		placements = append(placements, newPlacement(share.machine, w))
	}
	m.log.WithFields(logrus.Fields{
		"activity": act.SpecID(),
		"machines": len(plan),
		"window":   w.String(),
	}).Debug("packager allocation committed")
	return placements
}

func (m *PackagerManager) ReleaseByActivity(orderID, requestID, activityID int) int {
	return releaseByActivity(m.packagers, orderID, requestID, activityID)
}

func (m *PackagerManager) ReleaseByRequest(orderID, requestID int) int {
	return releaseByRequest(m.packagers, orderID, requestID)
}

func (m *PackagerManager) ReleaseByOrder(orderID int) int {
	return releaseByOrder(m.packagers, orderID)
}

func (m *PackagerManager) ReleaseFinishedBefore(now time.Time) int {
	return releaseFinishedBefore(m.packagers, now)
}

func (m *PackagerManager) Agenda() []AgendaEntry {
	return agendaOf(m.packagers)
}
