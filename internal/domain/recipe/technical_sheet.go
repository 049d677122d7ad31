package recipe

import (
	"github.com/shopspring/decimal"
)

// ComponentRef is one child entry of a technical sheet: an item consumed in
// proportion to the parent's batch.
type ComponentRef struct {
	ItemID     int
	SheetID    int
	Name       string
	ItemType   ItemType
	Policy     ProductionPolicy
	Proportion decimal.Decimal
}

// ComponentRequirement pairs a component with the quantity a given batch
// size demands of it.
type ComponentRequirement struct {
	Component ComponentRef
	Quantity  decimal.Decimal
}

// TechnicalSheet is one node of the recursive bill of materials. It is
// immutable after construction; batch-dependent quantities are computed per
// call rather than stored.
type TechnicalSheet struct {
	id           int
	itemID       int
	name         string
	itemType     ItemType
	unit         Unit
	unitWeight   decimal.Decimal
	baseQuantity decimal.Decimal
	lossPct      decimal.Decimal
	policy       ProductionPolicy
	components   []ComponentRef
}

// NewTechnicalSheet builds a sheet node, enforcing that the loss percentage
// stays strictly below the sum of component proportions (the quantity
// formula divides by their difference).
func NewTechnicalSheet(id, itemID int, name string, itemType ItemType, unit Unit,
	unitWeight, baseQuantity, lossPct decimal.Decimal, policy ProductionPolicy,
	components []ComponentRef) (*TechnicalSheet, error) {

	if len(components) > 0 {
		sum := decimal.Zero
		for _, c := range components {
			sum = sum.Add(c.Proportion)
		}
		if lossPct.GreaterThanOrEqual(sum) {
			return nil, &InvalidLossError{SheetID: id, Loss: lossPct, ProportionSum: sum}
		}
	}

	return &TechnicalSheet{
		id:           id,
		itemID:       itemID,
		name:         name,
		itemType:     itemType,
		unit:         unit,
		unitWeight:   unitWeight,
		baseQuantity: baseQuantity,
		lossPct:      lossPct,
		policy:       policy,
		components:   components,
	}, nil
}

func (s *TechnicalSheet) ID() int                  { return s.id }
func (s *TechnicalSheet) ItemID() int              { return s.itemID }
func (s *TechnicalSheet) Name() string             { return s.name }
func (s *TechnicalSheet) ItemType() ItemType       { return s.itemType }
func (s *TechnicalSheet) Unit() Unit               { return s.unit }
func (s *TechnicalSheet) Policy() ProductionPolicy { return s.policy }

// Components returns a copy of the child references
func (s *TechnicalSheet) Components() []ComponentRef {
	out := make([]ComponentRef, len(s.components))
	copy(out, s.components)
	return out
}

// ComponentRequirements computes how much of each child item a batch of the
// given quantity consumes:
//
//	child = round(proportion x (unitWeight or 1) x quantity / (sum(proportions) - loss), 2)
func (s *TechnicalSheet) ComponentRequirements(quantity decimal.Decimal) ([]ComponentRequirement, error) {
	if len(s.components) == 0 {
		return nil, nil
	}

	sum := decimal.Zero
	for _, c := range s.components {
		sum = sum.Add(c.Proportion)
	}
	denom := sum.Sub(s.lossPct)
	if denom.LessThanOrEqual(decimal.Zero) {
		return nil, &InvalidLossError{SheetID: s.id, Loss: s.lossPct, ProportionSum: sum}
	}

	weight := s.unitWeight
	if weight.IsZero() {
		weight = decimal.NewFromInt(1)
	}

	out := make([]ComponentRequirement, 0, len(s.components))
	for _, c := range s.components {
		base := c.Proportion.Mul(weight).Mul(quantity).Div(denom)
		out = append(out, ComponentRequirement{
			Component: c,
			Quantity:  base.Round(2),
		})
	}
	return out, nil
}
