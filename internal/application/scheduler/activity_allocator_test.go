package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// fakeAudit captures allocation records in memory
type fakeAudit struct {
	records  []scheduler.AllocationRecord
	discards int
	failures []string
}

func (f *fakeAudit) Record(rec scheduler.AllocationRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeAudit) Discard(orderID, requestID int) error {
	f.discards++
	return nil
}

func (f *fakeAudit) RecordFailure(orderID, requestID int, cause error) error {
	f.failures = append(f.failures, cause.Error())
	return nil
}

func bakeryFloor(t *testing.T) (*scheduler.Registry, *equipment.Oven, *equipment.Mixer) {
	t.Helper()
	catalog := &scheduler.ResourceCatalog{
		Ovens:  []*equipment.Oven{newOven(1, "Oven A", 4, 1000)},
		Mixers: []*equipment.Mixer{equipment.NewMixer(2, "Mixer A", equipment.SectorBakery, equipment.MixerKneader, 0, 20000, 1, 10)},
	}
	return catalog.BuildRegistry(time.Minute), catalog.Ovens[0], catalog.Mixers[0]
}

func TestActivityAllocator_ChainsStagesBackward(t *testing.T) {
	registry, oven, mixer := bakeryFloor(t)
	staffMgr := scheduler.NewStaffManager([]*staff.Employee{
		fullTimeEmployee(1, "Ana", staff.ProfessionBaker, 1),
	})
	audit := &fakeAudit{}
	a := scheduler.NewActivityAllocator(registry, staffMgr, audit, time.Minute)

	// Mixing is declared first, baking last: baking is the final physical
	// step and lands against the deadline
	spec := newSpec(1, "Prepare and bake", time.Hour,
		withEquipment(equipment.TypeMixers, equipment.TypeOvens),
		withSettings(equipment.TypeOvens, bakeSettings(180)),
		withStaff(1, staff.ProfessionBaker))
	act := newAct(t, 1, 1, 10, 500, spec)

	err := a.Allocate(act, tw(6, 0, 10, 0))

	require.NoError(t, err)
	assert.True(t, act.Allocated())
	assert.Equal(t, tw(8, 0, 10, 0), act.Window())

	require.Len(t, oven.Ledger().Entries(), 1)
	assert.Equal(t, tw(9, 0, 10, 0), oven.Ledger().Entries()[0].Window)

	require.Len(t, mixer.Ledger().Entries(), 1)
	assert.Equal(t, tw(8, 0, 9, 0), mixer.Ledger().Entries()[0].Window)

	// Crew covers the whole realized span
	crew := act.Crew()
	require.Len(t, crew, 1)
	occs := crew[0].Occupations()
	require.Len(t, occs, 1)
	assert.Equal(t, tw(8, 0, 10, 0), occs[0].Window)

	assert.Len(t, audit.records, 2)
}

func TestActivityAllocator_StaffShortageStepsBack(t *testing.T) {
	registry, oven, _ := bakeryFloor(t)
	// Ana's shift ends at 09:00, so nothing may run past it
	ana := staff.NewEmployee(1, "Ana", staff.ProfessionBaker, 1, 44,
		0, 9*time.Hour, 0, 0, nil)
	staffMgr := scheduler.NewStaffManager([]*staff.Employee{ana})
	a := scheduler.NewActivityAllocator(registry, staffMgr, nil, time.Minute)

	spec := newSpec(1, "Bake", time.Hour,
		withEquipment(equipment.TypeOvens),
		withSettings(equipment.TypeOvens, bakeSettings(180)),
		withStaff(1, staff.ProfessionBaker))
	act := newAct(t, 1, 1, 10, 500, spec)

	err := a.Allocate(act, tw(6, 0, 10, 0))

	require.NoError(t, err)
	assert.Equal(t, tw(8, 0, 9, 0), act.Window())

	// The equipment commits released during backtracking left no residue
	require.Len(t, oven.Ledger().Entries(), 1)
	assert.Equal(t, tw(8, 0, 9, 0), oven.Ledger().Entries()[0].Window)
}

func TestActivityAllocator_ExhaustionMarksFailed(t *testing.T) {
	registry, oven, _ := bakeryFloor(t)
	staffMgr := scheduler.NewStaffManager(nil)
	a := scheduler.NewActivityAllocator(registry, staffMgr, nil, time.Minute)

	spec := newSpec(1, "Bake", 2*time.Hour,
		withEquipment(equipment.TypeOvens),
		withSettings(equipment.TypeOvens, bakeSettings(180)))
	act := newAct(t, 1, 1, 10, 500, spec)

	// Journey shorter than the activity duration
	err := a.Allocate(act, tw(8, 0, 9, 0))

	var noWindow *schedule.NoWindowError
	require.ErrorAs(t, err, &noWindow)
	assert.Equal(t, schedule.StatusFailed, act.Status())
	assert.Empty(t, oven.Ledger().Entries())
}

func TestActivityAllocator_UnknownEquipmentType(t *testing.T) {
	registry := scheduler.NewRegistry()
	staffMgr := scheduler.NewStaffManager(nil)
	a := scheduler.NewActivityAllocator(registry, staffMgr, nil, time.Minute)

	spec := newSpec(1, "Bake", time.Hour, withEquipment(equipment.TypeOvens))
	act := newAct(t, 1, 1, 10, 500, spec)

	err := a.Allocate(act, tw(6, 0, 10, 0))

	var unknown *scheduler.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, schedule.StatusFailed, act.Status())
}

func TestMultiLog_FansOutToEverySink(t *testing.T) {
	first := &fakeAudit{}
	second := &fakeAudit{}
	sink := scheduler.MultiLog{first, second}

	rec := scheduler.AllocationRecord{OrderID: 1, RequestID: 1, ResourceName: "Oven A"}
	require.NoError(t, sink.Record(rec))
	require.NoError(t, sink.RecordFailure(1, 1, assert.AnError))
	require.NoError(t, sink.Discard(1, 1))

	assert.Len(t, first.records, 1)
	assert.Len(t, second.records, 1)
	assert.Len(t, second.failures, 1)
	assert.Equal(t, 1, first.discards)
	assert.Equal(t, 1, second.discards)
}
