package equipment

import "github.com/andrescamacho/bakeplan-go/internal/domain/shared"

// Packager wraps finished goods. Concurrent occupancies are allowed up to an
// aggregate gram capacity; runs of the same item may merge when their windows
// coincide exactly. A single activity may also be split across machines by
// the allocator.
type Packager struct {
	Equipment
	gramsMax   float64
	packagings map[PackagingType]bool
}

// NewPackager creates a packaging machine with the wrappings it supports
func NewPackager(id int, name string, sector Sector, gramsMax float64, packagings []PackagingType) *Packager {
	set := make(map[PackagingType]bool, len(packagings))
	for _, p := range packagings {
		set[p] = true
	}
	return &Packager{
		Equipment:  NewEquipment(id, name, TypePackagers, sector, 1),
		gramsMax:   gramsMax,
		packagings: set,
	}
}

func (p *Packager) GramsMax() float64 { return p.gramsMax }

// SupportsSettings validates the requested packaging type
func (p *Packager) SupportsSettings(s Settings) error {
	if s.Packaging == nil {
		return &SettingOutOfRangeError{Resource: p.Name(), Setting: "packaging"}
	}
	if !p.packagings[*s.Packaging] {
		return &SettingOutOfRangeError{Resource: p.Name(), Setting: "packaging"}
	}
	return nil
}

// Headroom returns the gram capacity still available over w, accounting for
// every overlapping occupancy at its peak instant
func (p *Packager) Headroom(w shared.Window) float64 {
	room := p.gramsMax - p.Ledger().PeakQuantity(w)
	if room < 0 {
		return 0
	}
	return room
}
