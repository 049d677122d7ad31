package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
)

func newTestOven(levels int, gramsPerLevel float64) *equipment.Oven {
	return equipment.NewOven(1, "Oven A", equipment.SectorBakery,
		levels, gramsPerLevel, 120, 300, nil, nil, nil, nil)
}

func TestOven_LevelsNeeded(t *testing.T) {
	oven := newTestOven(4, 1000)

	assert.Equal(t, 0, oven.LevelsNeeded(0))
	assert.Equal(t, 1, oven.LevelsNeeded(1000))
	assert.Equal(t, 2, oven.LevelsNeeded(1001))
	assert.Equal(t, 3, oven.LevelsNeeded(2500))
}

func TestOven_SupportsSettings(t *testing.T) {
	oven := newTestOven(4, 1000)

	err := oven.SupportsSettings(equipment.Settings{Temperature: equipment.IntSetting(180)})
	assert.NoError(t, err)

	err = oven.SupportsSettings(equipment.Settings{Temperature: equipment.IntSetting(350)})
	var outOfRange *equipment.SettingOutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, "temperature", outOfRange.Setting)

	// Temperature is mandatory for ovens
	err = oven.SupportsSettings(equipment.Settings{})
	assert.Error(t, err)

	// Steam demand on an oven without steam control
	err = oven.SupportsSettings(equipment.Settings{
		Temperature: equipment.IntSetting(180),
		Steam:       equipment.IntSetting(30),
	})
	assert.Error(t, err)
}

func TestOven_FreeLevels(t *testing.T) {
	oven := newTestOven(3, 1000)
	settings := equipment.Settings{Temperature: equipment.IntSetting(180)}

	occ := occupy("a", 1, 1, 10, 1, 800, win(8, 0, 9, 0))
	occ.Settings = settings
	oven.Ledger().Add(occ)

	free := oven.FreeLevels(win(8, 0, 9, 0), settings)
	assert.Equal(t, []int{0, 2}, free)

	// A conflicting temperature on a concurrent level blocks nothing on
	// other levels but keeps the occupied one out
	hot := equipment.Settings{Temperature: equipment.IntSetting(250)}
	assert.Equal(t, []int{0, 2}, oven.FreeLevels(win(8, 0, 9, 0), hot))
}

func TestOven_SharedLevelRoom(t *testing.T) {
	oven := newTestOven(3, 1000)
	settings := equipment.Settings{Temperature: equipment.IntSetting(180)}

	occ := occupy("a", 1, 1, 10, 0, 600, win(8, 0, 9, 0))
	occ.Settings = settings
	oven.Ledger().Add(occ)

	room := oven.SharedLevelRoom(10, win(8, 0, 9, 0), settings)
	assert.Equal(t, map[int]float64{0: 400}, room)

	// Different item shares no level
	assert.Empty(t, oven.SharedLevelRoom(99, win(8, 0, 9, 0), settings))

	// Same item at a shifted window shares no level
	assert.Empty(t, oven.SharedLevelRoom(10, win(8, 30, 9, 30), settings))

	// Incompatible settings forbid the merge
	hot := equipment.Settings{Temperature: equipment.IntSetting(250)}
	assert.Empty(t, oven.SharedLevelRoom(10, win(8, 0, 9, 0), hot))
}

func TestOven_SharedLevelRoomFullLevel(t *testing.T) {
	oven := newTestOven(2, 1000)
	settings := equipment.Settings{Temperature: equipment.IntSetting(180)}

	occ := occupy("a", 1, 1, 10, 0, 1000, win(8, 0, 9, 0))
	occ.Settings = settings
	oven.Ledger().Add(occ)

	// A level already at capacity offers no headroom
	assert.Empty(t, oven.SharedLevelRoom(10, win(8, 0, 9, 0), settings))
}
