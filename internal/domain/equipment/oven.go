package equipment

import (
	"math"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// Oven bakes on a stack of screen levels. Capacity is expressed in grams per
// level; occupancies claim individual levels. Two batches of the same item
// may share a level only when their windows coincide exactly.
type Oven struct {
	Equipment
	levels        int
	gramsPerLevel float64
	tempMin       int
	tempMax       int
	steamMin      *int
	steamMax      *int
	speedMin      *int
	speedMax      *int
}

// NewOven creates an oven. Steam and fan-speed ranges are optional: pass nil
// for ovens without those controls.
func NewOven(id int, name string, sector Sector, levels int, gramsPerLevel float64,
	tempMin, tempMax int, steamMin, steamMax, speedMin, speedMax *int) *Oven {
	return &Oven{
		Equipment:     NewEquipment(id, name, TypeOvens, sector, 0),
		levels:        levels,
		gramsPerLevel: gramsPerLevel,
		tempMin:       tempMin,
		tempMax:       tempMax,
		steamMin:      steamMin,
		steamMax:      steamMax,
		speedMin:      speedMin,
		speedMax:      speedMax,
	}
}

func (o *Oven) Levels() int            { return o.levels }
func (o *Oven) GramsPerLevel() float64 { return o.gramsPerLevel }
func (o *Oven) HasSteam() bool         { return o.steamMin != nil && o.steamMax != nil }
func (o *Oven) HasFan() bool           { return o.speedMin != nil && o.speedMax != nil }

// LevelsNeeded converts a gram quantity into the number of levels it occupies
func (o *Oven) LevelsNeeded(grams float64) int {
	if grams <= 0 {
		return 0
	}
	return int(math.Ceil(grams / o.gramsPerLevel))
}

// SupportsSettings checks the requested parameters against this oven's
// physical ranges. Steam or fan demands on an oven without those controls
// are rejected.
func (o *Oven) SupportsSettings(s Settings) error {
	if s.Temperature == nil {
		return &SettingOutOfRangeError{Resource: o.Name(), Setting: "temperature", Min: o.tempMin, Max: o.tempMax}
	}
	if *s.Temperature < o.tempMin || *s.Temperature > o.tempMax {
		return &SettingOutOfRangeError{
			Resource: o.Name(), Setting: "temperature",
			Value: *s.Temperature, Min: o.tempMin, Max: o.tempMax,
		}
	}
	if s.Steam != nil {
		if !o.HasSteam() {
			return &SettingOutOfRangeError{Resource: o.Name(), Setting: "steam", Value: *s.Steam}
		}
		if *s.Steam < *o.steamMin || *s.Steam > *o.steamMax {
			return &SettingOutOfRangeError{
				Resource: o.Name(), Setting: "steam",
				Value: *s.Steam, Min: *o.steamMin, Max: *o.steamMax,
			}
		}
	}
	if s.Speed != nil {
		if !o.HasFan() {
			return &SettingOutOfRangeError{Resource: o.Name(), Setting: "speed", Value: *s.Speed}
		}
		if *s.Speed < *o.speedMin || *s.Speed > *o.speedMax {
			return &SettingOutOfRangeError{
				Resource: o.Name(), Setting: "speed",
				Value: *s.Speed, Min: *o.speedMin, Max: *o.speedMax,
			}
		}
	}
	return nil
}

// FreeLevels returns the indices of levels with no overlapping occupancy in w
// whose concurrent neighbours accept the requested settings
func (o *Oven) FreeLevels(w shared.Window, s Settings) []int {
	var free []int
	for level := 0; level < o.levels; level++ {
		if !o.Ledger().SubUnitFree(level, w) {
			continue
		}
		if !o.Ledger().SubUnitSettingsCompatible(level, w, s) {
			continue
		}
		free = append(free, level)
	}
	return free
}

// SharedLevelRoom returns, per level holding the same item at exactly the
// same window with compatible settings, how much gram headroom remains
func (o *Oven) SharedLevelRoom(itemID int, w shared.Window, s Settings) map[int]float64 {
	room := make(map[int]float64)
	for level := 0; level < o.levels; level++ {
		used := o.Ledger().SharedQuantity(level, itemID, w)
		if used <= 0 {
			continue
		}
		if !o.Ledger().SubUnitSettingsCompatible(level, w, s) {
			continue
		}
		if headroom := o.gramsPerLevel - used; headroom > 0 {
			room[level] = headroom
		}
	}
	return room
}
