package schedule

import (
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// ActivitySpec is the static definition of one production step as declared
// in the activity catalog: which equipment categories it runs on, which
// specific machines are eligible, the duration bands, and the staffing
// requirement. Specs are immutable; activities are instantiated from them
// per order.
type ActivitySpec struct {
	ID       int
	Name     string
	ItemName string

	// EquipmentTypes preserves the catalog declaration order. The last
	// declared type is the first physical step and is scheduled
	// earliest-ending during allocation.
	EquipmentTypes    []equipment.Type
	EligibleEquipment map[equipment.Type][]string
	EquipmentFIPs     map[string]int
	Settings          map[equipment.Type]equipment.Settings

	Durations recipe.DurationTable

	// MaxWait bounds the gap before the successor activity must start.
	// nil means unbounded; zero means the successor must start exactly
	// when this activity ends.
	MaxWait *time.Duration

	StaffCount int
	StaffTypes []staff.Profession
	StaffFIPs  map[staff.Profession]int
}

// FIPFor returns the priority weight of a resource for this spec; resources
// not listed rank last
func (s *ActivitySpec) FIPFor(resourceName string) int {
	if fip, ok := s.EquipmentFIPs[resourceName]; ok {
		return fip
	}
	return 999
}

// SettingsFor returns the operating parameters declared for one equipment
// category
func (s *ActivitySpec) SettingsFor(t equipment.Type) (equipment.Settings, bool) {
	set, ok := s.Settings[t]
	return set, ok
}
