package equipment

// MixerKind distinguishes the mixing machines that share the same capacity
// model: planetary and industrial beaters, and dough kneaders.
type MixerKind string

const (
	MixerPlanetary  MixerKind = "PLANETARY"
	MixerIndustrial MixerKind = "INDUSTRIAL"
	MixerKneader    MixerKind = "KNEADER"
)

// Mixer holds a single bowl: one batch at a time, bounded by a gram range.
type Mixer struct {
	Equipment
	kind     MixerKind
	gramsMin float64
	gramsMax float64
	speedMin int
	speedMax int
}

// NewMixer creates a mixer without cooking capability
func NewMixer(id int, name string, sector Sector, kind MixerKind,
	gramsMin, gramsMax float64, speedMin, speedMax int) *Mixer {
	return &Mixer{
		Equipment: NewEquipment(id, name, TypeMixers, sector, 1),
		kind:      kind,
		gramsMin:  gramsMin,
		gramsMax:  gramsMax,
		speedMin:  speedMin,
		speedMax:  speedMax,
	}
}

func (m *Mixer) Kind() MixerKind   { return m.kind }
func (m *Mixer) GramsMin() float64 { return m.gramsMin }
func (m *Mixer) GramsMax() float64 { return m.gramsMax }

// HoldsQuantity checks the batch size against the bowl's gram range
func (m *Mixer) HoldsQuantity(grams float64) error {
	if grams < m.gramsMin || grams > m.gramsMax {
		return &CapacityError{Resource: m.Name(), Quantity: grams, Capacity: m.gramsMax}
	}
	return nil
}

// SupportsSettings validates the requested speed against the mixer's range
func (m *Mixer) SupportsSettings(s Settings) error {
	if s.Speed != nil && (*s.Speed < m.speedMin || *s.Speed > m.speedMax) {
		return &SettingOutOfRangeError{
			Resource: m.Name(), Setting: "speed",
			Value: *s.Speed, Min: m.speedMin, Max: m.speedMax,
		}
	}
	return nil
}

// CookingMixer is a heated mixer ("hot mix"): the mixer capacity model plus
// a temperature range.
type CookingMixer struct {
	Equipment
	gramsMin float64
	gramsMax float64
	speedMin int
	speedMax int
	tempMin  int
	tempMax  int
}

// NewCookingMixer creates a mixer with cooking capability
func NewCookingMixer(id int, name string, sector Sector,
	gramsMin, gramsMax float64, speedMin, speedMax, tempMin, tempMax int) *CookingMixer {
	return &CookingMixer{
		Equipment: NewEquipment(id, name, TypeCookingMixers, sector, 1),
		gramsMin:  gramsMin,
		gramsMax:  gramsMax,
		speedMin:  speedMin,
		speedMax:  speedMax,
		tempMin:   tempMin,
		tempMax:   tempMax,
	}
}

func (m *CookingMixer) GramsMin() float64 { return m.gramsMin }
func (m *CookingMixer) GramsMax() float64 { return m.gramsMax }

// HoldsQuantity checks the batch size against the bowl's gram range
func (m *CookingMixer) HoldsQuantity(grams float64) error {
	if grams < m.gramsMin || grams > m.gramsMax {
		return &CapacityError{Resource: m.Name(), Quantity: grams, Capacity: m.gramsMax}
	}
	return nil
}

// SupportsSettings validates speed and temperature against the machine ranges
func (m *CookingMixer) SupportsSettings(s Settings) error {
	if s.Speed != nil && (*s.Speed < m.speedMin || *s.Speed > m.speedMax) {
		return &SettingOutOfRangeError{
			Resource: m.Name(), Setting: "speed",
			Value: *s.Speed, Min: m.speedMin, Max: m.speedMax,
		}
	}
	if s.Temperature != nil && (*s.Temperature < m.tempMin || *s.Temperature > m.tempMax) {
		return &SettingOutOfRangeError{
			Resource: m.Name(), Setting: "temperature",
			Value: *s.Temperature, Min: m.tempMin, Max: m.tempMax,
		}
	}
	return nil
}
