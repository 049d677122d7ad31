package recipe

import "github.com/shopspring/decimal"

// SheetSource resolves technical sheets from the recipe catalog
type SheetSource interface {
	// Sheet returns the bill-of-materials node for an item, or a
	// SheetNotFoundError when the item has none (pure ingredients)
	Sheet(itemID int, itemType ItemType) (*TechnicalSheet, error)
}

// StockChecker answers inventory questions for stocked subproducts. It is an
// external collaborator; the scheduler only reads projected availability.
type StockChecker interface {
	// Sufficient reports whether current stock covers the required quantity
	Sufficient(itemID int, quantity decimal.Decimal) (bool, error)

	// CurrentLevel returns the current stock level of an item
	CurrentLevel(itemID int) (decimal.Decimal, error)
}
