package staff

import (
	"fmt"

	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
)

// UnavailableError reports an engagement attempt on an employee who cannot
// work the requested window
type UnavailableError struct {
	Employee string
	Window   shared.Window
	Reason   string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable during %s: %s", e.Employee, e.Window, e.Reason)
}
