package recipe

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidLossError reports a loss percentage at or above the proportion sum,
// which would make the quantity formula divide by zero or flip sign
type InvalidLossError struct {
	SheetID       int
	Loss          decimal.Decimal
	ProportionSum decimal.Decimal
}

func (e *InvalidLossError) Error() string {
	return fmt.Sprintf("technical sheet %d: loss %s must be below proportion sum %s",
		e.SheetID, e.Loss, e.ProportionSum)
}

// NoBandError reports a quantity that matches no declared duration band
type NoBandError struct {
	Quantity float64
}

func (e *NoBandError) Error() string {
	return fmt.Sprintf("no duration band covers quantity %.2f", e.Quantity)
}

// MalformedBandError reports a duration band with an inverted quantity range
type MalformedBandError struct {
	Min float64
	Max float64
}

func (e *MalformedBandError) Error() string {
	return fmt.Sprintf("malformed duration band: min %.2f greater than max %.2f", e.Min, e.Max)
}

// SheetNotFoundError reports a missing bill-of-materials entry
type SheetNotFoundError struct {
	ItemID   int
	ItemType ItemType
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("no technical sheet for item %d (%s)", e.ItemID, e.ItemType)
}
