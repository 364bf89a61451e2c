package scheduler

import (
	"time"

	"github.com/shelterops/shelter-api/internal/model"
)

// transitions is the forward path of the walk lifecycle. Cancellation is
// handled separately because it carries an ownership and date rule.
var transitions = map[model.WalkStatus]model.WalkStatus{
	model.WalkAccepted: model.WalkPending,
	model.WalkRejected: model.WalkPending,
	model.WalkStarted:  model.WalkAccepted,
	model.WalkFinished: model.WalkStarted,
}

// CanTransition reports whether a walk in from may move to to.
func CanTransition(from, to model.WalkStatus) bool {
	required, ok := transitions[to]
	return ok && from == required
}

// CanCancel applies the volunteer cancellation rule: only pending or
// accepted walks may be cancelled, and only strictly before the walk's
// date (date-only comparison, so same-day cancellation is rejected).
func CanCancel(walk model.Walk, today time.Time) bool {
	if walk.Status != model.WalkPending && walk.Status != model.WalkAccepted {
		return false
	}

	y, m, d := today.Date()
	walkDay := time.Date(walk.Date.Year(), walk.Date.Month(), walk.Date.Day(), 0, 0, 0, 0, walk.Date.Location())
	todayDay := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	return walkDay.After(todayDay)
}
