package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func tw(startHour, startMin, endHour, endMin int) shared.Window {
	return shared.Window{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

// specOption mutates a spec under construction
type specOption func(*schedule.ActivitySpec)

func withEquipment(types ...equipment.Type) specOption {
	return func(s *schedule.ActivitySpec) { s.EquipmentTypes = types }
}

func withSettings(t equipment.Type, set equipment.Settings) specOption {
	return func(s *schedule.ActivitySpec) {
		if s.Settings == nil {
			s.Settings = make(map[equipment.Type]equipment.Settings)
		}
		s.Settings[t] = set
	}
}

func withEquipmentFIPs(fips map[string]int) specOption {
	return func(s *schedule.ActivitySpec) { s.EquipmentFIPs = fips }
}

func withStaff(count int, professions ...staff.Profession) specOption {
	return func(s *schedule.ActivitySpec) {
		s.StaffCount = count
		s.StaffTypes = professions
	}
}

func withStaffFIPs(fips map[staff.Profession]int) specOption {
	return func(s *schedule.ActivitySpec) { s.StaffFIPs = fips }
}

func withMaxWait(d time.Duration) specOption {
	return func(s *schedule.ActivitySpec) { s.MaxWait = &d }
}

func newSpec(id int, name string, duration time.Duration, opts ...specOption) *schedule.ActivitySpec {
	s := &schedule.ActivitySpec{
		ID:       id,
		Name:     name,
		ItemName: "Item",
		Durations: recipe.DurationTable{
			{MinQuantity: 0, MaxQuantity: 100000, Duration: duration},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newAct(t *testing.T, id, orderID, itemID int, quantity float64, spec *schedule.ActivitySpec) *schedule.Activity {
	t.Helper()
	act, err := schedule.NewActivity(id, orderID, orderID, itemID, recipe.ItemProduct, quantity, spec)
	require.NoError(t, err)
	return act
}

func bakeSettings(temp int) equipment.Settings {
	return equipment.Settings{Temperature: equipment.IntSetting(temp)}
}

// fullTimeEmployee works around the clock with no break and no days off
func fullTimeEmployee(id int, name string, profession staff.Profession, fip int) *staff.Employee {
	return staff.NewEmployee(id, name, profession, fip, 44,
		0, 24*time.Hour, 0, 0, nil)
}
