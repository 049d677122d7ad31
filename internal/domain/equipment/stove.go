package equipment

import (
	"math"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// Stove cooks on individual burners. A batch claims as many burners as its
// quantity requires; flame and pressure apply per burner.
type Stove struct {
	Equipment
	burners        int
	gramsPerBurner float64
	flames         map[FlameType]bool
	pressures      map[PressureLevel]bool
}

// NewStove creates a stovetop with the supported flame and pressure options
func NewStove(id int, name string, sector Sector, burners int, gramsPerBurner float64,
	flames []FlameType, pressures []PressureLevel) *Stove {
	flameSet := make(map[FlameType]bool, len(flames))
	for _, f := range flames {
		flameSet[f] = true
	}
	pressureSet := make(map[PressureLevel]bool, len(pressures))
	for _, p := range pressures {
		pressureSet[p] = true
	}
	return &Stove{
		Equipment:      NewEquipment(id, name, TypeStoves, sector, 1),
		burners:        burners,
		gramsPerBurner: gramsPerBurner,
		flames:         flameSet,
		pressures:      pressureSet,
	}
}

func (s *Stove) Burners() int            { return s.burners }
func (s *Stove) GramsPerBurner() float64 { return s.gramsPerBurner }

// BurnersNeeded converts grams into the number of burners required
func (s *Stove) BurnersNeeded(grams float64) int {
	if grams <= 0 {
		return 0
	}
	return int(math.Ceil(grams / s.gramsPerBurner))
}

// SupportsSettings validates the flame type and pressure level against what
// this stove offers
func (s *Stove) SupportsSettings(set Settings) error {
	if set.Flame != nil && !s.flames[*set.Flame] {
		return &SettingOutOfRangeError{Resource: s.Name(), Setting: "flame"}
	}
	if set.Pressure != nil && !s.pressures[*set.Pressure] {
		return &SettingOutOfRangeError{Resource: s.Name(), Setting: "pressure"}
	}
	return nil
}

// FreeBurners returns the burner indices free in w with compatible settings
func (s *Stove) FreeBurners(w shared.Window, set Settings) []int {
	var free []int
	for burner := 0; burner < s.burners; burner++ {
		if !s.Ledger().SubUnitFree(burner, w) {
			continue
		}
		if !s.Ledger().SubUnitSettingsCompatible(burner, w, set) {
			continue
		}
		free = append(free, burner)
	}
	return free
}
