package equipment

import "github.com/andrescamacho/bakeplan-go/internal/domain/shared"

// Bench is a work surface split into fractions. Bench activities carry no
// quantity; they claim a number of fractions for their duration.
type Bench struct {
	Equipment
	fractions int
}

// NewBench creates a work bench with the given number of fractions
func NewBench(id int, name string, sector Sector, fractions int) *Bench {
	return &Bench{
		Equipment: NewEquipment(id, name, TypeBenches, sector, 0),
		fractions: fractions,
	}
}

func (b *Bench) Fractions() int { return b.fractions }

// FreeFractions returns the fraction indices with no overlapping occupancy in w
func (b *Bench) FreeFractions(w shared.Window) []int {
	var free []int
	for fraction := 0; fraction < b.fractions; fraction++ {
		if b.Ledger().SubUnitFree(fraction, w) {
			free = append(free, fraction)
		}
	}
	return free
}
