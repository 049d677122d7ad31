package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
)

func newOven(id int, name string, levels int, gramsPerLevel float64) *equipment.Oven {
	return equipment.NewOven(id, name, equipment.SectorBakery,
		levels, gramsPerLevel, 120, 300, nil, nil, nil, nil)
}

func bakeSpec(id int, opts ...specOption) *schedule.ActivitySpec {
	base := []specOption{
		withEquipment(equipment.TypeOvens),
		withSettings(equipment.TypeOvens, bakeSettings(180)),
	}
	return newSpec(id, "Bake", time.Hour, append(base, opts...)...)
}

func TestOvenManager_AllocatesLatestWindow(t *testing.T) {
	oven := newOven(1, "Oven A", 4, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)
	act := newAct(t, 1, 1, 10, 500, bakeSpec(1))

	placements, err := m.Allocate(act, tw(6, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, placements, 1)
	assert.Equal(t, tw(8, 0, 9, 0), placements[0].Window)
	assert.Equal(t, "Oven A", placements[0].ResourceName)
	assert.Len(t, oven.Ledger().Entries(), 1)
}

func TestOvenManager_RequiresTemperature(t *testing.T) {
	oven := newOven(1, "Oven A", 4, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)
	spec := newSpec(1, "Bake", time.Hour, withEquipment(equipment.TypeOvens))
	act := newAct(t, 1, 1, 10, 500, spec)

	_, err := m.Allocate(act, tw(6, 0, 9, 0))

	var missing *schedule.ConfigMissingError
	require.ErrorAs(t, err, &missing)
}

func TestOvenManager_SplitsAcrossLevels(t *testing.T) {
	oven := newOven(1, "Oven A", 4, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)
	act := newAct(t, 1, 1, 10, 2500, bakeSpec(1))

	placements, err := m.Allocate(act, tw(6, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, placements, 1)

	entries := oven.Ledger().Entries()
	require.Len(t, entries, 3)
	total := 0.0
	for _, e := range entries {
		total += e.Quantity
		assert.Equal(t, tw(8, 0, 9, 0), e.Window)
	}
	assert.Equal(t, 2500.0, total)
}

func TestOvenManager_MergesSameItemSameWindow(t *testing.T) {
	oven := newOven(1, "Oven A", 1, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)

	first := newAct(t, 1, 1, 10, 600, bakeSpec(1))
	_, err := m.Allocate(first, tw(6, 0, 9, 0))
	require.NoError(t, err)

	// Same item, same latest window: rides the partially filled level
	second := newAct(t, 2, 2, 10, 400, bakeSpec(1))
	placements, err := m.Allocate(second, tw(6, 0, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, tw(8, 0, 9, 0), placements[0].Window)

	entries := oven.Ledger().Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].SubUnit, entries[1].SubUnit)
}

func TestOvenManager_DifferentItemForcedEarlier(t *testing.T) {
	oven := newOven(1, "Oven A", 1, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)

	first := newAct(t, 1, 1, 10, 1000, bakeSpec(1))
	_, err := m.Allocate(first, tw(6, 0, 9, 0))
	require.NoError(t, err)

	// A different item cannot merge, so it backs off to the slot just
	// before the committed batch
	second := newAct(t, 2, 2, 11, 1000, bakeSpec(1))
	placements, err := m.Allocate(second, tw(6, 0, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, tw(7, 0, 8, 0), placements[0].Window)
}

func TestOvenManager_NoWindowLeavesNoResidue(t *testing.T) {
	oven := newOven(1, "Oven A", 1, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)

	// More grams than the whole oven can ever take
	act := newAct(t, 1, 1, 10, 5000, bakeSpec(1))
	_, err := m.Allocate(act, tw(6, 0, 9, 0))

	var noWindow *schedule.NoWindowError
	require.ErrorAs(t, err, &noWindow)
	assert.Empty(t, oven.Ledger().Entries())
}

func TestOvenManager_PrefersLowerWeight(t *testing.T) {
	a := newOven(1, "Oven A", 4, 1000)
	b := newOven(2, "Oven B", 4, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{a, b}, time.Minute)

	spec := bakeSpec(1, withEquipmentFIPs(map[string]int{"Oven B": 1, "Oven A": 2}))
	act := newAct(t, 1, 1, 10, 500, spec)

	placements, err := m.Allocate(act, tw(6, 0, 9, 0))

	require.NoError(t, err)
	assert.Equal(t, "Oven B", placements[0].ResourceName)
	assert.Empty(t, a.Ledger().Entries())
}

func TestOvenManager_ReleaseByRequest(t *testing.T) {
	oven := newOven(1, "Oven A", 4, 1000)
	m := scheduler.NewOvenManager([]*equipment.Oven{oven}, time.Minute)
	act := newAct(t, 1, 7, 10, 2500, bakeSpec(1))

	_, err := m.Allocate(act, tw(6, 0, 9, 0))
	require.NoError(t, err)

	assert.Equal(t, 3, m.ReleaseByRequest(7, 7))
	assert.Empty(t, oven.Ledger().Entries())
	assert.Equal(t, 0, m.ReleaseByRequest(7, 7))
}
