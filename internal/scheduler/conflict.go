package scheduler

import (
	"fmt"
	"strings"

	"github.com/shelterops/shelter-api/internal/model"
)

// ConflictError reports every existing walk that collides with one
// candidate booking. No booking from the request is persisted when it is
// returned.
type ConflictError struct {
	Booking   Booking
	Conflicts []model.Walk
}

func (e *ConflictError) Error() string {
	details := make([]string, 0, len(e.Conflicts))
	for _, walk := range e.Conflicts {
		details = append(details, fmt.Sprintf(
			"Walk on %s for %d minutes (status: %s)",
			walk.Date.Format("2006-01-02 15:04"), walk.Duration, walk.Status,
		))
	}

	return "requested time slots overlap with existing walks: " + strings.Join(details, ", ")
}
