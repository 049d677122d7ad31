package schedule

import (
	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// ActivitySource resolves the activity definitions of a catalog item
type ActivitySource interface {
	// ActivitiesFor returns the activity specs declared for an item, in
	// catalog order. Items with no activities (pure ingredients) return
	// an empty slice.
	ActivitiesFor(itemID int, itemType recipe.ItemType) ([]*ActivitySpec, error)
}

// ProfessionSource resolves the professional types an item's production
// requires, used to pre-filter the eligible staff of an order
type ProfessionSource interface {
	ProfessionsFor(itemID int) ([]staff.Profession, error)
}
