package recipe

// ItemType classifies a node of the bill of materials
type ItemType string

const (
	ItemProduct    ItemType = "PRODUCT"
	ItemSubproduct ItemType = "SUBPRODUCT"
	ItemIngredient ItemType = "INGREDIENT"
)

// ProductionPolicy distinguishes items produced ahead of demand and held in
// stock from items always produced fresh per order
type ProductionPolicy string

const (
	PolicyStocked  ProductionPolicy = "STOCKED"
	PolicyOnDemand ProductionPolicy = "ON_DEMAND"
)

// Unit is the unit of measure of an item quantity
type Unit string

const (
	UnitGrams Unit = "g"
	UnitUnits Unit = "un"
)
