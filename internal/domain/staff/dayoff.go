package staff

import "time"

// DayOffKind selects how a day-off rule recurs
type DayOffKind string

const (
	// DayOffFixedWeekday grants every occurrence of one weekday off
	DayOffFixedWeekday DayOffKind = "FIXED_WEEKDAY"

	// DayOffNthWeekdayOfMonth grants the n-th occurrence of a weekday in
	// each month off (e.g. the second Friday)
	DayOffNthWeekdayOfMonth DayOffKind = "NTH_WEEKDAY_OF_MONTH"
)

// DayOffRule is one recurring day-off entitlement of an employee
type DayOffRule struct {
	Kind       DayOffKind
	Weekday    time.Weekday
	Occurrence int
}

// AppliesTo reports whether the rule grants the given date off
func (r DayOffRule) AppliesTo(date time.Time) bool {
	switch r.Kind {
	case DayOffFixedWeekday:
		return date.Weekday() == r.Weekday

	case DayOffNthWeekdayOfMonth:
		if date.Weekday() != r.Weekday {
			return false
		}
		count := 0
		cursor := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		for cursor.Month() == date.Month() {
			if cursor.Weekday() == r.Weekday {
				count++
				if count == r.Occurrence {
					return cursor.Day() == date.Day()
				}
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		return false

	default:
		return false
	}
}
