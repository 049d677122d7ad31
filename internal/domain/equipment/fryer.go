package equipment

import (
	"math"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// Fryer holds oil at one temperature and fries in basket fractions. All
// concurrent baskets share the oil temperature.
type Fryer struct {
	Equipment
	baskets        int
	gramsPerBasket float64
	tempMin        int
	tempMax        int
}

// NewFryer creates a fryer
func NewFryer(id int, name string, sector Sector, baskets int, gramsPerBasket float64,
	tempMin, tempMax int) *Fryer {
	return &Fryer{
		Equipment:      NewEquipment(id, name, TypeFryers, sector, 1),
		baskets:        baskets,
		gramsPerBasket: gramsPerBasket,
		tempMin:        tempMin,
		tempMax:        tempMax,
	}
}

func (f *Fryer) Baskets() int            { return f.baskets }
func (f *Fryer) GramsPerBasket() float64 { return f.gramsPerBasket }

// BasketsNeeded converts grams into the number of basket fractions required
func (f *Fryer) BasketsNeeded(grams float64) int {
	if grams <= 0 {
		return 0
	}
	return int(math.Ceil(grams / f.gramsPerBasket))
}

// SupportsSettings validates the oil temperature against the fryer's range
func (f *Fryer) SupportsSettings(s Settings) error {
	if s.Temperature == nil {
		return &SettingOutOfRangeError{Resource: f.Name(), Setting: "temperature", Min: f.tempMin, Max: f.tempMax}
	}
	if *s.Temperature < f.tempMin || *s.Temperature > f.tempMax {
		return &SettingOutOfRangeError{
			Resource: f.Name(), Setting: "temperature",
			Value: *s.Temperature, Min: f.tempMin, Max: f.tempMax,
		}
	}
	return nil
}

// FreeBaskets returns basket indices free in w, provided every concurrent
// occupancy shares the requested oil temperature
func (f *Fryer) FreeBaskets(w shared.Window, s Settings) []int {
	if !f.Ledger().SettingsCompatible(w, s) {
		return nil
	}
	var free []int
	for basket := 0; basket < f.baskets; basket++ {
		if f.Ledger().SubUnitFree(basket, w) {
			free = append(free, basket)
		}
	}
	return free
}
