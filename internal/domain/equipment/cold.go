package equipment

// ColdKind distinguishes refrigeration from freezing units
type ColdKind string

const (
	ColdRefrigeration ColdKind = "REFRIGERATION"
	ColdFreezing      ColdKind = "FREEZING"
)

// ColdChamber stores items under refrigeration or freezing. Many items share
// the chamber concurrently up to an aggregate box capacity, all at one
// chamber temperature.
type ColdChamber struct {
	Equipment
	kind     ColdKind
	boxesMax float64
	tempMin  int
	tempMax  int
}

// NewColdChamber creates a refrigeration or freezing chamber
func NewColdChamber(id int, name string, sector Sector, kind ColdKind,
	boxesMax float64, tempMin, tempMax int) *ColdChamber {
	return &ColdChamber{
		Equipment: NewEquipment(id, name, TypeColdStorage, sector, 0),
		kind:      kind,
		boxesMax:  boxesMax,
		tempMin:   tempMin,
		tempMax:   tempMax,
	}
}

func (c *ColdChamber) Kind() ColdKind    { return c.kind }
func (c *ColdChamber) BoxesMax() float64 { return c.boxesMax }

// SupportsSettings validates the storage temperature against the chamber range
func (c *ColdChamber) SupportsSettings(s Settings) error {
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
