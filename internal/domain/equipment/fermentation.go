package equipment

import (
	"math"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// FermentationCabinet proofs dough on tray levels under a controlled
// temperature. All concurrent occupants share one chamber temperature.
type FermentationCabinet struct {
	Equipment
	levels        int
	gramsPerLevel float64
	tempMin       int
	tempMax       int
}

// NewFermentationCabinet creates a fermentation cabinet
func NewFermentationCabinet(id int, name string, sector Sector,
	levels int, gramsPerLevel float64, tempMin, tempMax int) *FermentationCabinet {
	return &FermentationCabinet{
		Equipment:     NewEquipment(id, name, TypeFermentationCabinets, sector, 0),
		levels:        levels,
		gramsPerLevel: gramsPerLevel,
		tempMin:       tempMin,
		tempMax:       tempMax,
	}
}

func (c *FermentationCabinet) Levels() int            { return c.levels }
func (c *FermentationCabinet) GramsPerLevel() float64 { return c.gramsPerLevel }

// LevelsNeeded converts grams into the number of tray levels required
func (c *FermentationCabinet) LevelsNeeded(grams float64) int {
	if grams <= 0 {
		return 0
	}
	return int(math.Ceil(grams / c.gramsPerLevel))
}

// SupportsSettings validates the proofing temperature against the cabinet range
func (c *FermentationCabinet) SupportsSettings(s Settings) error {
	if s.Temperature == nil {
		return &SettingOutOfRangeError{Resource: c.Name(), Setting: "temperature", Min: c.tempMin, Max: c.tempMax}
	}
	if *s.Temperature < c.tempMin || *s.Temperature > c.tempMax {
		return &SettingOutOfRangeError{
			Resource: c.Name(), Setting: "temperature",
			Value: *s.Temperature, Min: c.tempMin, Max: c.tempMax,
		}
	}
	return nil
}

// FreeLevels returns level indices free in w whose concurrent neighbours,
// anywhere in the cabinet, accept the requested temperature
func (c *FermentationCabinet) FreeLevels(w shared.Window, s Settings) []int {
	if !c.Ledger().SettingsCompatible(w, s) {
		return nil
	}
	var free []int
	for level := 0; level < c.levels; level++ {
		if c.Ledger().SubUnitFree(level, w) {
			free = append(free, level)
		}
	}
	return free
}
