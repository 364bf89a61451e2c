package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
)

// ErrNoSlots means a reservation request carried an empty slot list.
var ErrNoSlots = errors.New("no slots selected")

type WalkStore interface {
	FindActiveByAnimal(ctx context.Context, animal model.ID) ([]model.Walk, error)
	Insert(ctx context.Context, dto database.InsertWalkDTO) (model.ID, error)
	UpdateStatus(ctx context.Context, id model.ID, status model.WalkStatus) error
}

// Scheduler turns volunteer slot selections into validated, non-overlapping
// walk bookings and drives the walk status lifecycle.
type Scheduler struct {
	logger *slog.Logger
	walks  WalkStore
}

func New(logger *slog.Logger, walks WalkStore) *Scheduler {
	return &Scheduler{
		logger: logger.With("module", "scheduler"),
		walks:  walks,
	}
}

// Reserve groups the requested slots into contiguous bookings, validates
// every booking against the animal's active walks, and persists them all
// as pending walks. The request is atomic: a conflict in any booking fails
// the whole call before anything is inserted, and the returned
// ConflictError lists every overlapping walk for the first conflicting
// booking in chronological order.
//
// Two concurrent reservations for the same animal can both pass validation
// and double-book; validation and insertion are not serialized here.
func (s *Scheduler) Reserve(ctx context.Context, animal model.Animal, volunteer model.ID, location string, slots []time.Time) ([]model.Walk, error) {
	if !animal.Bookable() {
		return nil, model.NewError("animal", model.ErrUnavailable)
	}

	if len(slots) == 0 {
		return nil, ErrNoSlots
	}

	existing, err := s.walks.FindActiveByAnimal(ctx, animal.ID)
	if err != nil {
		return nil, err
	}

	bookings := GroupSlots(slots)

	for _, booking := range bookings {
		var conflicts []model.Walk
		for _, walk := range existing {
			if Overlapping(walk.Date, walk.Duration, booking.Start, booking.End) {
				conflicts = append(conflicts, walk)
			}
		}

		if len(conflicts) != 0 {
			return nil, &ConflictError{Booking: booking, Conflicts: conflicts}
		}
	}

	walks := make([]model.Walk, 0, len(bookings))
	for _, booking := range bookings {
		id, err := s.walks.Insert(ctx, database.InsertWalkDTO{
			Animal:   animal.ID,
			User:     volunteer,
			Date:     booking.Start,
			Duration: booking.Duration,
			Location: location,
		})
		if err != nil {
			return nil, err
		}

		walks = append(walks, model.Walk{
			ID:       id,
			Animal:   animal.ID,
			User:     volunteer,
			Date:     booking.Start,
			Duration: booking.Duration,
			Location: location,
			Status:   model.WalkPending,
		})
	}

	s.logger.Debug("walks reserved", "animal", animal.ID, "volunteer", volunteer, "count", len(walks))

	return walks, nil
}

// Cancel applies the volunteer cancellation rule to the walk and persists
// the cancelled status.
func (s *Scheduler) Cancel(ctx context.Context, walk model.Walk, volunteer model.ID, today time.Time) error {
	if walk.User != volunteer {
		return model.NewError("walk", model.ErrForbidden)
	}

	if !CanCancel(walk, today) {
		return model.NewError("walk", model.ErrInvalidTransition)
	}

	return s.walks.UpdateStatus(ctx, walk.ID, model.WalkCancelled)
}

// Transition moves the walk along the pending → accepted → started →
// finished path (or pending → rejected) and persists the new status.
func (s *Scheduler) Transition(ctx context.Context, walk model.Walk, to model.WalkStatus) error {
	if !CanTransition(walk.Status, to) {
		return model.NewError("walk", model.ErrInvalidTransition)
	}

	return s.walks.UpdateStatus(ctx, walk.ID, to)
}

// ScheduledSlots projects the active walks overlapping [from, to) back
// into their constituent hourly slots for calendar display. Walks with a
// duration that is not a whole number of hours occupy a final partial
// slot, so the hour count rounds up.
func ScheduledSlots(walks []model.Walk, from, to time.Time) []Slot {
	slots := []Slot{}

	for _, walk := range walks {
		if !walk.Active() {
			continue
		}
		if !Overlapping(walk.Date, walk.Duration, from, to) {
			continue
		}

		numSlots := walk.Duration / 60
		if walk.Duration%60 != 0 {
			numSlots++
		}

		for offset := 0; offset < numSlots; offset++ {
			slotTime := walk.Date.Add(time.Duration(offset) * SlotLength)
			slots = append(slots, Slot{
				Date: slotTime.Format("2006-01-02"),
				Hour: slotTime.Format("15:00"),
			})
		}
	}

	return slots
}
