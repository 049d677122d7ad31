package equipment

// Modeler shapes bread units. One batch at a time, bounded by a unit-count
// capacity per run.
type Modeler struct {
	Equipment
	unitsMax int
}

// NewModeler creates a bread modeler
func NewModeler(id int, name string, sector Sector, unitsMax int) *Modeler {
	return &Modeler{
		Equipment: NewEquipment(id, name, TypeModelers, sector, 1),
		unitsMax:  unitsMax,
	}
}

func (m *Modeler) UnitsMax() int { return m.unitsMax }

// HoldsQuantity checks the unit count against the modeler's run capacity
func (m *Modeler) HoldsQuantity(units float64) error {
	if units > float64(m.unitsMax) {
		return &CapacityError{Resource: m.Name(), Quantity: units, Capacity: float64(m.unitsMax)}
	}
	return nil
}
