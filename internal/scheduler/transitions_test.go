package scheduler

import (
	"testing"
	"time"

	"github.com/shelterops/shelter-api/internal/model"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from model.WalkStatus
		to   model.WalkStatus
		want bool
	}{
		{model.WalkPending, model.WalkAccepted, true},
		{model.WalkPending, model.WalkRejected, true},
		{model.WalkAccepted, model.WalkStarted, true},
		{model.WalkStarted, model.WalkFinished, true},

		{model.WalkPending, model.WalkStarted, false},
		{model.WalkPending, model.WalkFinished, false},
		{model.WalkAccepted, model.WalkRejected, false},
		{model.WalkRejected, model.WalkAccepted, false},
		{model.WalkFinished, model.WalkStarted, false},
		{model.WalkCancelled, model.WalkAccepted, false},
		{model.WalkPending, model.WalkCancelled, false},
	}

	for _, tc := range testCases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanCancel(t *testing.T) {
	today := time.Date(2024, time.June, 10, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status model.WalkStatus
		date   time.Time
		want   bool
	}{
		{
			name:   "pending walk tomorrow",
			status: model.WalkPending,
			date:   today.AddDate(0, 0, 1),
			want:   true,
		},
		{
			name:   "accepted walk tomorrow",
			status: model.WalkAccepted,
			date:   today.AddDate(0, 0, 1),
			want:   true,
		},
		{
			name:   "same day is too late even if the hour is later",
			status: model.WalkPending,
			date:   time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "walk in the past",
			status: model.WalkPending,
			date:   today.AddDate(0, 0, -1),
			want:   false,
		},
		{
			name:   "started walk cannot be cancelled",
			status: model.WalkStarted,
			date:   today.AddDate(0, 0, 1),
			want:   false,
		},
		{
			name:   "finished walk cannot be cancelled",
			status: model.WalkFinished,
			date:   today.AddDate(0, 0, 1),
			want:   false,
		},
		{
			name:   "already cancelled",
			status: model.WalkCancelled,
			date:   today.AddDate(0, 0, 1),
			want:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			walk := model.Walk{Status: tc.status, Date: tc.date}
			if got := CanCancel(walk, today); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
