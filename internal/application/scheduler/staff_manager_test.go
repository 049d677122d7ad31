package scheduler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/bakeplan-go/internal/application/scheduler"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

func TestStaffManager_EngagesRequiredCrew(t *testing.T) {
	roster := []*staff.Employee{
		fullTimeEmployee(1, "Ana", staff.ProfessionBaker, 1),
		fullTimeEmployee(2, "Bruno", staff.ProfessionBaker, 2),
		fullTimeEmployee(3, "Clara", staff.ProfessionCook, 1),
	}
	m := scheduler.NewStaffManager(roster)
	spec := newSpec(1, "Shape", time.Hour, withStaff(2, staff.ProfessionBaker))
	act := newAct(t, 1, 1, 10, 500, spec)

	crew, err := m.Engage(act, tw(8, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, crew, 2)
	assert.Equal(t, "Ana", crew[0].Name())
	assert.Equal(t, "Bruno", crew[1].Name())
	assert.True(t, crew[0].EngagedOn(1, 1))
}

func TestStaffManager_NoStaffRequired(t *testing.T) {
	m := scheduler.NewStaffManager(nil)
	spec := newSpec(1, "Rest", time.Hour)
	act := newAct(t, 1, 1, 10, 500, spec)

	crew, err := m.Engage(act, tw(8, 0, 9, 0))

	require.NoError(t, err)
	assert.Empty(t, crew)
}

func TestStaffManager_PrefersAlreadyEngaged(t *testing.T) {
	ana := fullTimeEmployee(1, "Ana", staff.ProfessionBaker, 1)
	bruno := fullTimeEmployee(2, "Bruno", staff.ProfessionBaker, 2)
	m := scheduler.NewStaffManager([]*staff.Employee{ana, bruno})

	// Bruno already works this request at an earlier hour
	require.NoError(t, bruno.Assign(staff.Occupation{
		OrderID: 1, RequestID: 1, ActivityID: 9, Window: tw(6, 0, 7, 0),
	}))

	spec := newSpec(1, "Shape", time.Hour, withStaff(1, staff.ProfessionBaker))
	act := newAct(t, 1, 1, 10, 500, spec)

	crew, err := m.Engage(act, tw(8, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, crew, 1)
	assert.Equal(t, "Bruno", crew[0].Name())
}

func TestStaffManager_SpecWeightOverridesEmployeeWeight(t *testing.T) {
	baker := fullTimeEmployee(1, "Ana", staff.ProfessionBaker, 1)
	cook := fullTimeEmployee(2, "Clara", staff.ProfessionCook, 5)
	m := scheduler.NewStaffManager([]*staff.Employee{baker, cook})

	spec := newSpec(1, "Fry", time.Hour,
		withStaff(1, staff.ProfessionBaker, staff.ProfessionCook),
		withStaffFIPs(map[staff.Profession]int{
			staff.ProfessionCook:  1,
			staff.ProfessionBaker: 3,
		}))
	act := newAct(t, 1, 1, 10, 500, spec)

	crew, err := m.Engage(act, tw(8, 0, 9, 0))

	require.NoError(t, err)
	require.Len(t, crew, 1)
	assert.Equal(t, "Clara", crew[0].Name())
}

func TestStaffManager_AllOrNothing(t *testing.T) {
	ana := fullTimeEmployee(1, "Ana", staff.ProfessionBaker, 1)
	m := scheduler.NewStaffManager([]*staff.Employee{ana})

	spec := newSpec(1, "Shape", time.Hour, withStaff(2, staff.ProfessionBaker))
	act := newAct(t, 1, 1, 10, 500, spec)

	_, err := m.Engage(act, tw(8, 0, 9, 0))

	var unavailable *schedule.StaffUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 2, unavailable.Required)
	assert.Equal(t, 1, unavailable.Available)

	// The single candidate that was engaged must be released
	assert.Empty(t, ana.Occupations())
}

func TestStaffManager_ProfessionFilter(t *testing.T) {
	roster := []*staff.Employee{
		fullTimeEmployee(1, "Ana", staff.ProfessionBaker, 1),
		fullTimeEmployee(2, "Clara", staff.ProfessionCook, 1),
	}
	m := scheduler.NewStaffManager(roster)

	eligible := m.Eligible([]staff.Profession{staff.ProfessionCook})
	require.Len(t, eligible, 1)
	assert.Equal(t, "Clara", eligible[0].Name())

	// Empty filter admits the whole roster
	assert.Len(t, m.Eligible(nil), 2)
}
