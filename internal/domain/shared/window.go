package shared

import (
	"fmt"
	"time"
)

// Window is a half-open time interval [Start, End) used for every occupancy
// and search range in the scheduler.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window, rejecting empty or inverted intervals
func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, &InvalidWindowError{Start: start, End: end}
	}
	return Window{Start: start, End: end}, nil
}

// Duration returns the length of the window
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps reports whether two half-open intervals intersect
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Contains reports whether t falls inside [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Equal reports whether both endpoints coincide exactly
func (w Window) Equal(o Window) bool {
	return w.Start.Equal(o.Start) && w.End.Equal(o.End)
}

// IsZero reports whether the window has not been set
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", w.Start.Format("15:04"), w.End.Format("15:04"))
}

// InvalidWindowError reports an empty or inverted time interval
type InvalidWindowError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid window: end %s is not after start %s",
		e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}
