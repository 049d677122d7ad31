package scheduler

import (
	"time"

	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
)

// ResourceCatalog is the explicit inventory of physical equipment handed to
// the scheduler. It replaces any notion of ambient machine state: everything
// an order can allocate against is listed here.
type ResourceCatalog struct {
	Ovens                []*equipment.Oven
	Mixers               []*equipment.Mixer
	CookingMixers        []*equipment.CookingMixer
	FermentationCabinets []*equipment.FermentationCabinet
	Scales               []*equipment.Scale
	Stoves               []*equipment.Stove
	Fryers               []*equipment.Fryer
	Benches              []*equipment.Bench
	Dividers             []*equipment.Divider
	Modelers             []*equipment.Modeler
	Packagers            []*equipment.Packager
	ColdChambers         []*equipment.ColdChamber
}

// BuildRegistry wires one allocator per equipment category over this
// catalog's resources, all sharing the same backward-search step
func (c *ResourceCatalog) BuildRegistry(step time.Duration) *Registry {
	r := NewRegistry()
	r.Register(NewOvenManager(c.Ovens, step))
	r.Register(NewMixerManager(c.Mixers, step))
	r.Register(NewCookingMixerManager(c.CookingMixers, step))
	r.Register(NewFermentationManager(c.FermentationCabinets, step))
	r.Register(NewScaleManager(c.Scales, step))
	r.Register(NewStoveManager(c.Stoves, step))
	r.Register(NewFryerManager(c.Fryers, step))
	r.Register(NewBenchManager(c.Benches, step))
	r.Register(NewDividerManager(c.Dividers, step))
	r.Register(NewModelerManager(c.Modelers, step))
	r.Register(NewPackagerManager(c.Packagers, step))
	r.Register(NewColdManager(c.ColdChambers, step))
	return r
}
