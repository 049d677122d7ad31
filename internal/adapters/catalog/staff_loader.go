package catalog

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

type dayOffDTO struct {
	Kind       string `json:"kind" validate:"required,oneof=FIXED_WEEKDAY NTH_WEEKDAY_OF_MONTH"`
	Weekday    string `json:"weekday" validate:"required,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	Occurrence int    `json:"occurrence" validate:"omitempty,min=1,max=5"`
}

type employeeDTO struct {
	ID          int         `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Profession  string      `json:"profession" validate:"required,oneof=BAKER CONFECTIONER COOK ASSISTANT"`
	FIP         int         `json:"fip"`
	WeeklyHours int         `json:"weekly_hours" validate:"required,min=1"`
	ShiftStart  string      `json:"shift_start" validate:"required"`
	ShiftEnd    string      `json:"shift_end" validate:"required"`
	BreakStart  string      `json:"break_start"`
	BreakLength string      `json:"break_length"`
	DayOffs     []dayOffDTO `json:"day_offs" validate:"dive"`
}

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// LoadStaff reads and validates the staff catalog file into the roster
func LoadStaff(path string) ([]*staff.Employee, error) {
	var dtos []employeeDTO
	if err := readJSON(path, &dtos); err != nil {
		return nil, err
	}

	validate := validator.New()
	roster := make([]*staff.Employee, 0, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		if err := validate.Struct(dto); err != nil {
			return nil, fmt.Errorf("staff catalog entry %d: %w", dto.ID, err)
		}
		employee, err := buildEmployee(dto)
		if err != nil {
			return nil, err
		}
		roster = append(roster, employee)
	}
	return roster, nil
}

func buildEmployee(dto *employeeDTO) (*staff.Employee, error) {
	shiftStart, err := ParseTimeOfDay(dto.ShiftStart)
	if err != nil {
		return nil, fmt.Errorf("staff catalog entry %d: %w", dto.ID, err)
	}
	shiftEnd, err := ParseTimeOfDay(dto.ShiftEnd)
	if err != nil {
		return nil, fmt.Errorf("staff catalog entry %d: %w", dto.ID, err)
	}

	var breakStart, breakLength time.Duration
	if dto.BreakStart != "" {
		if breakStart, err = ParseTimeOfDay(dto.BreakStart); err != nil {
			return nil, fmt.Errorf("staff catalog entry %d: %w", dto.ID, err)
		}
	}
	if dto.BreakLength != "" {
		if breakLength, err = ParseClock(dto.BreakLength); err != nil {
			return nil, fmt.Errorf("staff catalog entry %d: %w", dto.ID, err)
		}
	}

	dayOffs := make([]staff.DayOffRule, 0, len(dto.DayOffs))
	for _, d := range dto.DayOffs {
		dayOffs = append(dayOffs, staff.DayOffRule{
			Kind:       staff.DayOffKind(d.Kind),
			Weekday:    weekdays[d.Weekday],
			Occurrence: d.Occurrence,
		})
	}

	return staff.NewEmployee(dto.ID, dto.Name, staff.Profession(dto.Profession),
		dto.FIP, dto.WeeklyHours, shiftStart, shiftEnd, breakStart, breakLength, dayOffs), nil
}
