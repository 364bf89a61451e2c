package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shelterops/shelter-api/internal/database"
	"github.com/shelterops/shelter-api/internal/model"
)

type fakeWalkStore struct {
	walks  map[model.ID]model.Walk
	nextID model.ID
}

func newFakeWalkStore(walks ...model.Walk) *fakeWalkStore {
	store := &fakeWalkStore{walks: make(map[model.ID]model.Walk)}
	for _, walk := range walks {
		store.nextID++
		walk.ID = store.nextID
		store.walks[walk.ID] = walk
	}
	return store
}

func (s *fakeWalkStore) FindActiveByAnimal(_ context.Context, animal model.ID) ([]model.Walk, error) {
	active := []model.Walk{}
	for _, walk := range s.walks {
		if walk.Animal == animal && walk.Active() {
			active = append(active, walk)
		}
	}
	return active, nil
}

func (s *fakeWalkStore) Insert(_ context.Context, dto database.InsertWalkDTO) (model.ID, error) {
	s.nextID++
	s.walks[s.nextID] = model.Walk{
		ID:       s.nextID,
		Animal:   dto.Animal,
		User:     dto.User,
		Date:     dto.Date,
		Duration: dto.Duration,
		Location: dto.Location,
		Status:   model.WalkPending,
	}
	return s.nextID, nil
}

func (s *fakeWalkStore) UpdateStatus(_ context.Context, id model.ID, status model.WalkStatus) error {
	walk, ok := s.walks[id]
	if !ok {
		return model.NewError("walk", model.ErrNotFound)
	}
	walk.Status = status
	s.walks[id] = walk
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func availableAnimal() model.Animal {
	return model.Animal{ID: 1, Status: model.AnimalAvailable}
}

func TestSchedulerReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("contiguous slots become one pending walk", func(t *testing.T) {
		store := newFakeWalkStore()
		sched := New(testLogger(), store)

		walks, err := sched.Reserve(ctx, availableAnimal(), 7, "park", []time.Time{day(9, 0), day(10, 0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(walks) != 1 {
			t.Fatalf("got %d walks, want 1", len(walks))
		}
		walk := walks[0]
		if walk.Status != model.WalkPending {
			t.Errorf("got status %s, want pending", walk.Status)
		}
		if walk.Duration != 120 {
			t.Errorf("got duration %d, want 120", walk.Duration)
		}
		if walk.User != 7 || walk.Location != "park" {
			t.Errorf("booking metadata not carried over: %+v", walk)
		}
		if len(store.walks) != 1 {
			t.Errorf("store holds %d walks, want 1", len(store.walks))
		}
	})

	t.Run("unavailable animal", func(t *testing.T) {
		store := newFakeWalkStore()
		sched := New(testLogger(), store)

		animal := model.Animal{ID: 1, Status: model.AnimalQuarantine}

		_, err := sched.Reserve(ctx, animal, 7, "park", []time.Time{day(9, 0)})
		if !errors.Is(err, model.ErrUnavailable) {
			t.Fatalf("got %v, want ErrUnavailable", err)
		}
	})

	t.Run("hidden animal", func(t *testing.T) {
		store := newFakeWalkStore()
		sched := New(testLogger(), store)

		animal := model.Animal{ID: 1, Status: model.AnimalAvailable, Hidden: true}

		_, err := sched.Reserve(ctx, animal, 7, "park", []time.Time{day(9, 0)})
		if !errors.Is(err, model.ErrUnavailable) {
			t.Fatalf("got %v, want ErrUnavailable", err)
		}
	})

	t.Run("empty slot list", func(t *testing.T) {
		sched := New(testLogger(), newFakeWalkStore())

		_, err := sched.Reserve(ctx, availableAnimal(), 7, "park", nil)
		if !errors.Is(err, ErrNoSlots) {
			t.Fatalf("got %v, want ErrNoSlots", err)
		}
	})

	t.Run("conflict reports the overlapping walks", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, User: 9,
			Date: day(10, 0), Duration: 60,
			Status: model.WalkAccepted,
		})
		sched := New(testLogger(), store)

		_, err := sched.Reserve(ctx, availableAnimal(), 7, "park", []time.Time{day(10, 0)})

		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("got %v, want ConflictError", err)
		}
		if len(conflict.Conflicts) != 1 {
			t.Fatalf("got %d conflicts, want 1", len(conflict.Conflicts))
		}
		if len(store.walks) != 1 {
			t.Errorf("store holds %d walks, want the 1 preexisting walk", len(store.walks))
		}
	})

	t.Run("a conflict in any booking keeps all bookings out", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, User: 9,
			Date: day(12, 0), Duration: 60,
			Status: model.WalkPending,
		})
		sched := New(testLogger(), store)

		// Two bookings: 08:00-09:00 is free, 12:00-13:00 collides.
		_, err := sched.Reserve(ctx, availableAnimal(), 7, "park", []time.Time{day(8, 0), day(12, 0)})

		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("got %v, want ConflictError", err)
		}
		if len(store.walks) != 1 {
			t.Errorf("store holds %d walks, want the 1 preexisting walk", len(store.walks))
		}
	})

	t.Run("rejected and cancelled walks do not block", func(t *testing.T) {
		store := newFakeWalkStore(
			model.Walk{Animal: 1, Date: day(10, 0), Duration: 60, Status: model.WalkRejected},
			model.Walk{Animal: 1, Date: day(10, 0), Duration: 60, Status: model.WalkCancelled},
		)
		sched := New(testLogger(), store)

		walks, err := sched.Reserve(ctx, availableAnimal(), 7, "park", []time.Time{day(10, 0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(walks) != 1 {
			t.Fatalf("got %d walks, want 1", len(walks))
		}
	})

	t.Run("other animals' walks do not block", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 2, Date: day(10, 0), Duration: 60, Status: model.WalkAccepted,
		})
		sched := New(testLogger(), store)

		if _, err := sched.Reserve(ctx, availableAnimal(), 7, "park", []time.Time{day(10, 0)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSchedulerCancel(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	t.Run("owner cancels an upcoming walk", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, User: 7,
			Date: today.AddDate(0, 0, 1), Duration: 60,
			Status: model.WalkPending,
		})
		sched := New(testLogger(), store)

		walk := store.walks[1]
		if err := sched.Cancel(ctx, walk, 7, today); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if store.walks[1].Status != model.WalkCancelled {
			t.Errorf("got status %s, want cancelled", store.walks[1].Status)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, User: 7,
			Date: today.AddDate(0, 0, 1), Duration: 60,
			Status: model.WalkPending,
		})
		sched := New(testLogger(), store)

		err := sched.Cancel(ctx, store.walks[1], 8, today)
		if !errors.Is(err, model.ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
		if store.walks[1].Status != model.WalkPending {
			t.Error("walk status changed despite the failure")
		}
	})

	t.Run("same-day walk", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, User: 7,
			Date: today.Add(4 * time.Hour), Duration: 60,
			Status: model.WalkAccepted,
		})
		sched := New(testLogger(), store)

		err := sched.Cancel(ctx, store.walks[1], 7, today)
		if !errors.Is(err, model.ErrInvalidTransition) {
			t.Fatalf("got %v, want ErrInvalidTransition", err)
		}
	})
}

func TestSchedulerTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("valid step is persisted", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, Date: day(10, 0), Duration: 60, Status: model.WalkPending,
		})
		sched := New(testLogger(), store)

		if err := sched.Transition(ctx, store.walks[1], model.WalkAccepted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.walks[1].Status != model.WalkAccepted {
			t.Errorf("got status %s, want accepted", store.walks[1].Status)
		}
	})

	t.Run("skipping a step fails", func(t *testing.T) {
		store := newFakeWalkStore(model.Walk{
			Animal: 1, Date: day(10, 0), Duration: 60, Status: model.WalkPending,
		})
		sched := New(testLogger(), store)

		err := sched.Transition(ctx, store.walks[1], model.WalkFinished)
		if !errors.Is(err, model.ErrInvalidTransition) {
			t.Fatalf("got %v, want ErrInvalidTransition", err)
		}
		if store.walks[1].Status != model.WalkPending {
			t.Error("walk status changed despite the failure")
		}
	})
}

func TestScheduledSlots(t *testing.T) {
	from, to := day(0, 0), day(23, 59)

	t.Run("walk expands to hourly slots", func(t *testing.T) {
		walks := []model.Walk{
			{Date: day(9, 0), Duration: 120, Status: model.WalkAccepted},
		}

		slots := ScheduledSlots(walks, from, to)

		want := []Slot{
			{Date: "2024-06-10", Hour: "09:00"},
			{Date: "2024-06-10", Hour: "10:00"},
		}
		if len(slots) != len(want) {
			t.Fatalf("got %d slots, want %d", len(slots), len(want))
		}
		for i := range want {
			if slots[i] != want[i] {
				t.Errorf("slot %d: got %+v, want %+v", i, slots[i], want[i])
			}
		}
	})

	t.Run("partial hour rounds up", func(t *testing.T) {
		walks := []model.Walk{
			{Date: day(9, 0), Duration: 90, Status: model.WalkPending},
		}

		slots := ScheduledSlots(walks, from, to)
		if len(slots) != 2 {
			t.Fatalf("got %d slots, want 2", len(slots))
		}
	})

	t.Run("inactive and out-of-range walks are skipped", func(t *testing.T) {
		walks := []model.Walk{
			{Date: day(9, 0), Duration: 60, Status: model.WalkCancelled},
			{Date: day(10, 0), Duration: 60, Status: model.WalkRejected},
			{Date: day(9, 0).AddDate(0, 0, 5), Duration: 60, Status: model.WalkAccepted},
		}

		slots := ScheduledSlots(walks, from, to)
		if len(slots) != 0 {
			t.Fatalf("got %d slots, want 0", len(slots))
		}
	})
}
