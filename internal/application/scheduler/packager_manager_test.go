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

func newPackager(id int, name string, gramsMax float64) *equipment.Packager {
	return equipment.NewPackager(id, name, equipment.SectorBakery, gramsMax,
		[]equipment.PackagingType{equipment.PackagingBag, equipment.PackagingTray})
}

func wrapSpec(id int, opts ...specOption) *schedule.ActivitySpec {
	base := []specOption{
		withEquipment(equipment.TypePackagers),
		withSettings(equipment.TypePackagers, equipment.Settings{
			Packaging: equipment.PackagingSetting(equipment.PackagingBag),
		}),
	}
	return newSpec(id, "Wrap", time.Hour, append(base, opts...)...)
}

func TestPackagerManager_SplitsAcrossMachines(t *testing.T) {
	first := newPackager(1, "Packager A", 1000)
	second := newPackager(2, "Packager B", 1000)
	m := scheduler.NewPackagerManager([]*equipment.Packager{first, second}, time.Minute)
	act := newAct(t, 1, 1, 10, 1500, wrapSpec(1))

	placements, err := m.Allocate(act, tw(6, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, placements, 2)
	assert.Equal(t, tw(8, 0, 9, 0), placements[0].Window)
	assert.Equal(t, tw(8, 0, 9, 0), placements[1].Window)

	firstEntries := first.Ledger().Entries()
	secondEntries := second.Ledger().Entries()
	require.Len(t, firstEntries, 1)
	require.Len(t, secondEntries, 1)
	assert.Equal(t, 1000.0, firstEntries[0].Quantity)
	assert.Equal(t, 500.0, secondEntries[0].Quantity)
}

func TestPackagerManager_ShortHeadroomCommitsNothing(t *testing.T) {
	first := newPackager(1, "Packager A", 1000)
	second := newPackager(2, "Packager B", 1000)
	m := scheduler.NewPackagerManager([]*equipment.Packager{first, second}, time.Minute)
	act := newAct(t, 1, 1, 10, 2500, wrapSpec(1))

	_, err := m.Allocate(act, tw(6, 0, 9, 0))

	var noWindow *schedule.NoWindowError
	require.ErrorAs(t, err, &noWindow)
	assert.Empty(t, first.Ledger().Entries())
	assert.Empty(t, second.Ledger().Entries())
}

func TestPackagerManager_RequiresPackaging(t *testing.T) {
	m := scheduler.NewPackagerManager([]*equipment.Packager{newPackager(1, "Packager A", 1000)}, time.Minute)
	spec := newSpec(1, "Wrap", time.Hour, withEquipment(equipment.TypePackagers))
	act := newAct(t, 1, 1, 10, 500, spec)

	_, err := m.Allocate(act, tw(6, 0, 9, 0))

	var missing *schedule.ConfigMissingError
	require.ErrorAs(t, err, &missing)
}

func TestPackagerManager_UnsupportedWrappingSkipsMachine(t *testing.T) {
	// Packager A only does vacuum, so the bag batch must land on B
	vacuumOnly := equipment.NewPackager(1, "Packager A", equipment.SectorBakery, 2000,
		[]equipment.PackagingType{equipment.PackagingVacuum})
	bagCapable := newPackager(2, "Packager B", 2000)
	m := scheduler.NewPackagerManager([]*equipment.Packager{vacuumOnly, bagCapable}, time.Minute)
	act := newAct(t, 1, 1, 10, 1500, wrapSpec(1))

	placements, err := m.Allocate(act, tw(6, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, placements, 1)
	assert.Equal(t, "Packager B", placements[0].ResourceName)
	assert.Empty(t, vacuumOnly.Ledger().Entries())
}
