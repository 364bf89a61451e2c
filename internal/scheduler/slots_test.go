package scheduler

import (
	"testing"
	"time"
)

func day(hour, min int) time.Time {
	return time.Date(2024, time.June, 10, hour, min, 0, 0, time.UTC)
}

func TestGroupSlots(t *testing.T) {
	testCases := []struct {
		name  string
		slots []time.Time
		want  []Booking
	}{
		{
			name:  "empty",
			slots: nil,
			want:  nil,
		},
		{
			name:  "single slot",
			slots: []time.Time{day(10, 0)},
			want: []Booking{
				{Start: day(10, 0), End: day(11, 0), Duration: 60},
			},
		},
		{
			name:  "contiguous run and a separate slot",
			slots: []time.Time{day(10, 0), day(11, 0), day(12, 0), day(15, 0)},
			want: []Booking{
				{Start: day(10, 0), End: day(13, 0), Duration: 180},
				{Start: day(15, 0), End: day(16, 0), Duration: 60},
			},
		},
		{
			name:  "unsorted input is sorted first",
			slots: []time.Time{day(15, 0), day(11, 0), day(10, 0), day(12, 0)},
			want: []Booking{
				{Start: day(10, 0), End: day(13, 0), Duration: 180},
				{Start: day(15, 0), End: day(16, 0), Duration: 60},
			},
		},
		{
			name:  "two hour gap splits the booking",
			slots: []time.Time{day(10, 0), day(12, 0)},
			want: []Booking{
				{Start: day(10, 0), End: day(11, 0), Duration: 60},
				{Start: day(12, 0), End: day(13, 0), Duration: 60},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GroupSlots(tc.slots)

			if len(got) != len(tc.want) {
				t.Fatalf("got %d bookings, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if !got[i].Start.Equal(tc.want[i].Start) {
					t.Errorf("booking %d: got start %v, want %v", i, got[i].Start, tc.want[i].Start)
				}
				if !got[i].End.Equal(tc.want[i].End) {
					t.Errorf("booking %d: got end %v, want %v", i, got[i].End, tc.want[i].End)
				}
				if got[i].Duration != tc.want[i].Duration {
					t.Errorf("booking %d: got duration %d, want %d", i, got[i].Duration, tc.want[i].Duration)
				}
			}
		})
	}
}

func TestGroupSlotsDoesNotMutateInput(t *testing.T) {
	slots := []time.Time{day(15, 0), day(10, 0)}

	GroupSlots(slots)

	if !slots[0].Equal(day(15, 0)) {
		t.Error("input slice was reordered")
	}
}

func TestOverlapping(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		duration int
		start    time.Time
		end      time.Time
		want     bool
	}{
		{
			name: "partial overlap",
			date: day(10, 0), duration: 60,
			start: day(10, 30), end: day(11, 30),
			want: true,
		},
		{
			name: "walk contains range",
			date: day(10, 0), duration: 180,
			start: day(11, 0), end: day(12, 0),
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			date: day(10, 0), duration: 60,
			start: day(11, 0), end: day(12, 0),
			want: false,
		},
		{
			name: "range ends where walk starts",
			date: day(11, 0), duration: 60,
			start: day(10, 0), end: day(11, 0),
			want: false,
		},
		{
			name: "disjoint",
			date: day(8, 0), duration: 60,
			start: day(14, 0), end: day(15, 0),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlapping(tc.date, tc.duration, tc.start, tc.end)
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
