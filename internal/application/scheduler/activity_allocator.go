package scheduler

import (
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// ActivityAllocator drives the allocation of one activity across its declared
// equipment types and its crew. Types are processed in reverse declared
// order: each stage takes the full activity duration and must end exactly
// where the previously placed stage starts, so the stages chain backward from
// the candidate end. Staff engage over the whole realized span once every
// stage is placed. Any stage or staffing failure at a candidate end releases
// the partial commit and steps the candidate back.
type ActivityAllocator struct {
	registry *Registry
	staffMgr *StaffManager
	auditLog OrderLogSink
	step     time.Duration
	log      *logrus.Entry
}

// NewActivityAllocator wires the equipment registry, staff manager and audit
// sink into one activity-level allocator
func NewActivityAllocator(registry *Registry, staffMgr *StaffManager,
	auditLog OrderLogSink, step time.Duration) *ActivityAllocator {
	if step <= 0 {
		step = DefaultStep
	}
	return &ActivityAllocator{
		registry: registry,
		staffMgr: staffMgr,
		auditLog: auditLog,
		step:     step,
		log:      logrus.WithField("component", "activity-allocator"),
	}
}

// Allocate searches the journey backward for the latest end where every
// equipment stage and the crew fit. On success the activity carries its
// realized window, placements and crew; on exhaustion it is marked FAILED.
func (a *ActivityAllocator) Allocate(act *schedule.Activity, journey shared.Window) error {
	if err := act.MarkAttempting(); err != nil {
		return err
	}

	end := journey.End
	for !end.Add(-act.Duration()).Before(journey.Start) {
		placements, w, err := a.tryEquipment(act, journey.Start, end)
		if err != nil {
			var noWindow *schedule.NoWindowError
			if errors.As(err, &noWindow) {
				end = end.Add(-a.step)
				continue
			}
			// configuration and wiring problems never resolve by
			// stepping back
			if markErr := act.MarkFailed(); markErr != nil {
				return markErr
			}
			return err
		}

		crew, err := a.staffMgr.Engage(act, w)
		if err != nil {
			a.registry.ReleaseByActivity(act.OrderID(), act.RequestID(), act.ID())
			end = end.Add(-a.step)
			continue
		}

		if err := act.MarkAllocated(w, placements, crew); err != nil {
			return err
		}
		a.recordAudit(act, placements)
		a.log.WithFields(logrus.Fields{
			"activity": act.SpecID(),
			"item":     act.ItemID(),
			"window":   w.String(),
			"crew":     len(crew),
		}).Info("activity allocated")
		return nil
	}

	if err := act.MarkFailed(); err != nil {
		return err
	}
	return &schedule.NoWindowError{
		ActivityID: act.SpecID(),
		Activity:   act.Name(),
		Window:     shared.Window{Start: journey.Start, End: journey.End},
	}
}

// tryEquipment places every declared equipment type for one candidate end.
// Stages chain backward: the next stage's window ends at the realized start
// of the stage placed before it.
func (a *ActivityAllocator) tryEquipment(act *schedule.Activity,
	journeyStart time.Time, candidateEnd time.Time) ([]schedule.Placement, shared.Window, error) {

	types := act.Spec().EquipmentTypes
	stageEnd := candidateEnd
	var placements []schedule.Placement

	for i := len(types) - 1; i >= 0; i-- {
		alloc, err := a.registry.Lookup(types[i])
		if err != nil {
			a.releasePartial(act)
			return nil, shared.Window{}, err
		}

		stageStart := stageEnd.Add(-act.Duration())
		if stageStart.Before(journeyStart) {
			a.releasePartial(act)
			return nil, shared.Window{}, &schedule.NoWindowError{
				ActivityID:    act.SpecID(),
				Activity:      act.Name(),
				EquipmentType: types[i],
				Window:        shared.Window{Start: journeyStart, End: stageEnd},
			}
		}

		stage, err := alloc.Allocate(act, shared.Window{Start: stageStart, End: stageEnd})
		if err != nil {
			a.releasePartial(act)
			return nil, shared.Window{}, err
		}
		placements = append(placements, stage...)
		stageEnd = stage[0].Window.Start
	}

	if !contiguous(placements) {
		a.releasePartial(act)
		return nil, shared.Window{}, &schedule.NoWindowError{
			ActivityID: act.SpecID(),
			Activity:   act.Name(),
			Window:     shared.Window{Start: journeyStart, End: candidateEnd},
		}
	}

	return placements, shared.Window{Start: stageEnd, End: candidateEnd}, nil
}

func (a *ActivityAllocator) releasePartial(act *schedule.Activity) {
	a.registry.ReleaseByActivity(act.OrderID(), act.RequestID(), act.ID())
}

// contiguous verifies that the stage windows form an unbroken chain when
// ordered by start time. Placements sharing one window (split machines,
// multiple sub-units) count as a single stage.
func contiguous(placements []schedule.Placement) bool {
	if len(placements) < 2 {
		return true
	}
	sorted := make([]schedule.Placement, len(placements))
	copy(sorted, placements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Window.Start.Before(sorted[j].Window.Start)
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1].Window, sorted[i].Window
		if cur.Equal(prev) {
			continue
		}
		if !cur.Start.Equal(prev.End) {
			return false
		}
	}
	return true
}

// recordAudit appends one audit line per committed placement. Audit failures
// are logged and swallowed: the allocation already happened.
func (a *ActivityAllocator) recordAudit(act *schedule.Activity, placements []schedule.Placement) {
	if a.auditLog == nil {
		return
	}
	for _, p := range placements {
		rec := AllocationRecord{
			OrderID:      act.OrderID(),
			RequestID:    act.RequestID(),
			ActivityID:   act.ID(),
			ItemName:     act.ItemName(),
			ActivityName: act.Name(),
			ResourceName: p.ResourceName,
			Placement:    p,
		}
		if err := a.auditLog.Record(rec); err != nil {
			a.log.WithError(err).Warn("audit record failed")
		}
	}
}
