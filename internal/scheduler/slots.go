package scheduler

import (
	"time"

	"golang.org/x/exp/slices"
)

const (
	// SlotLength is the fixed unit of volunteer walking availability: each
	// requested timestamp claims one hour starting at that instant.
	SlotLength = time.Hour

	// MaxGap is the largest distance between adjacent slots that still
	// merges them into one booking. A gap of exactly one slot length keeps
	// the slots contiguous; anything larger splits the booking.
	MaxGap = time.Hour
)

// Booking is one candidate walk produced by grouping contiguous slots.
// The interval is half-open: [Start, End).
type Booking struct {
	Start    time.Time
	End      time.Time
	Duration int // minutes
}

// GroupSlots sorts the requested slot timestamps and merges runs of
// contiguous slots into bookings. The result is in chronological order.
func GroupSlots(slots []time.Time) []Booking {
	if len(slots) == 0 {
		return nil
	}

	sorted := slices.Clone(slots)
	slices.SortFunc(sorted, func(a, b time.Time) int {
		return a.Compare(b)
	})

	groups := [][]time.Time{}
	current := []time.Time{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if curr.Sub(prev) <= MaxGap {
			current = append(current, curr)
		} else {
			groups = append(groups, current)
			current = []time.Time{curr}
		}
	}
	groups = append(groups, current)

	bookings := make([]Booking, 0, len(groups))
	for _, group := range groups {
		start := group[0]
		end := group[len(group)-1].Add(SlotLength)
		bookings = append(bookings, Booking{
			Start:    start,
			End:      end,
			Duration: int(end.Sub(start) / time.Minute),
		})
	}

	return bookings
}

// Slot is one occupied hour, shaped for calendar display.
type Slot struct {
	Date string `json:"date"`
	Hour string `json:"hour"`
}

// Overlapping reports whether the walk interval [date, date+duration)
// intersects [start, end). Touching boundaries do not overlap.
func Overlapping(date time.Time, durationMinutes int, start, end time.Time) bool {
	walkEnd := date.Add(time.Duration(durationMinutes) * time.Minute)
	return date.Before(end) && walkEnd.After(start)
}
