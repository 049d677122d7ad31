package equipment

// Scale is a digital weighing scale. A weighing occupies the whole scale for
// the activity's duration and the quantity must fall inside the scale's
// readable gram range.
type Scale struct {
	Equipment
	gramsMin float64
	gramsMax float64
}

// NewScale creates a digital scale
func NewScale(id int, name string, sector Sector, gramsMin, gramsMax float64) *Scale {
	return &Scale{
		Equipment: NewEquipment(id, name, TypeScales, sector, 1),
		gramsMin:  gramsMin,
		gramsMax:  gramsMax,
	}
}

func (s *Scale) GramsMin() float64 { return s.gramsMin }
func (s *Scale) GramsMax() float64 { return s.gramsMax }

// Reads checks the quantity against the scale's readable range
func (s *Scale) Reads(grams float64) error {
	if grams < s.gramsMin || grams > s.gramsMax {
		return &CapacityError{Resource: s.Name(), Quantity: grams, Capacity: s.gramsMax}
	}
	return nil
}
