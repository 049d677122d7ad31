package schedule

import (
	"github.com/andrescamacho/bakeplan-go/internal/domain/equipment"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// Placement is one committed equipment reservation of an allocated activity
type Placement struct {
	OccupancyID   string
	ResourceID    int
	ResourceName  string
	EquipmentType equipment.Type
	Window        shared.Window
}
