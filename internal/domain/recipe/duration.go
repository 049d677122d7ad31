package recipe

import "time"

// DurationBand maps an inclusive quantity range to a fixed process duration
type DurationBand struct {
	MinQuantity float64
	MaxQuantity float64
	Duration    time.Duration
}

// DurationTable resolves an activity's duration from its batch quantity.
// Bands come from the activity catalog and are checked in declared order.
type DurationTable []DurationBand

// DurationFor picks the band whose [min, max] range contains quantity
func (t DurationTable) DurationFor(quantity float64) (time.Duration, error) {
	for _, band := range t {
		if band.MaxQuantity < band.MinQuantity {
			return 0, &MalformedBandError{Min: band.MinQuantity, Max: band.MaxQuantity}
		}
		if quantity >= band.MinQuantity && quantity <= band.MaxQuantity {
			return band.Duration, nil
		}
	}
	return 0, &NoBandError{Quantity: quantity}
}
