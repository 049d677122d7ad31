package equipment

// Divider portions dough into equal pieces, optionally rounding them. One
// batch at a time, bounded by a gram capacity.
type Divider struct {
	Equipment
	gramsMax   float64
	hasRounder bool
}

// NewDivider creates a dough divider; hasRounder marks divider-rounder combos
func NewDivider(id int, name string, sector Sector, gramsMax float64, hasRounder bool) *Divider {
	return &Divider{
		Equipment:  NewEquipment(id, name, TypeDividers, sector, 1),
		gramsMax:   gramsMax,
		hasRounder: hasRounder,
	}
}

func (d *Divider) GramsMax() float64 { return d.gramsMax }
func (d *Divider) HasRounder() bool  { return d.hasRounder }

// HoldsQuantity checks the batch size against the hopper capacity
func (d *Divider) HoldsQuantity(grams float64) error {
	if grams > d.gramsMax {
		return &CapacityError{Resource: d.Name(), Quantity: grams, Capacity: d.gramsMax}
	}
	return nil
}
