package equipment

import (
	"fmt"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// CapacityError reports a quantity that exceeds what a resource can hold
type CapacityError struct {
	Resource string
	Quantity float64
	Capacity float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: quantity %.2f exceeds capacity %.2f", e.Resource, e.Quantity, e.Capacity)
}

// SettingOutOfRangeError reports an operating parameter outside the
// resource's supported range
type SettingOutOfRangeError struct {
	Resource string
	Setting  string
	Value    int
	Min      int
	Max      int
}

func (e *SettingOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s %d outside supported range [%d, %d]",
		e.Resource, e.Setting, e.Value, e.Min, e.Max)
}

// OccupiedError reports an attempted double booking of a sub-unit
type OccupiedError struct {
	Resource string
	SubUnit  int
	Window   shared.Window
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("%s: sub-unit %d already occupied during %s", e.Resource, e.SubUnit, e.Window)
}
