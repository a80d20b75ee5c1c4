// Package lifecycle holds the pure rules for drive status progression and
// public visibility. Nothing here touches storage; callers persist the
// changes Reconcile hands back.
package lifecycle

import (
	"time"

	"drivehub/internal/domain"
)

// SystemActor marks automatic transitions in status_updated_by.
const SystemActor = "system"

const (
	ReasonNotCompleted = "did not meet minimum participant requirement"
	ReasonCompleted    = "automatically completed as end date passed"
	ReasonResumed      = "automatically resumed after postponement"
	ReasonStarted      = "start date has passed"
)

// MinParticipants is the quorum a drive must gather to be publicly listed
// and to count as completed: a third of the expected turnout, but never
// fewer than ten.
func MinParticipants(expected int) int {
	min := (expected + 2) / 3
	if min < 10 {
		min = 10
	}
	return min
}

// Reconcile computes the status a drive should have as of now. It returns
// nil when the stored status is already correct, which makes it idempotent:
// applying the returned detail and calling Reconcile again with the same
// now always yields nil.
//
// Rule precedence, first match wins:
//  1. completed/cancelled are terminal for the engine
//  2. effective end passed: below quorum -> not_completed, else -> completed
//  3. postponement expired -> upcoming
//  4. start passed while upcoming -> active
func Reconcile(e *domain.Event, now time.Time) *domain.StatusDetail {
	switch e.Status {
	case domain.StatusCompleted, domain.StatusCancelled:
		return nil
	}

	if e.EffectiveEnd().Before(now) {
		if e.CurrentParticipants < MinParticipants(e.ExpectedParticipants) {
			if e.Status == domain.StatusNotCompleted {
				return nil
			}
			d := domain.NotCompleted(ReasonNotCompleted, SystemActor, now)
			return &d
		}
		d := domain.Completed(ReasonCompleted, SystemActor, now)
		return &d
	}

	if e.Status == domain.StatusPostponed && e.PostponedUntil != nil && e.PostponedUntil.Before(now) {
		d := domain.Upcoming(ReasonResumed, SystemActor, now)
		return &d
	}

	if e.Status == domain.StatusUpcoming && !e.StartDate.After(now) &&
		(e.EndDate == nil || !e.EndDate.Before(now)) {
		d := domain.Active(ReasonStarted, SystemActor, now)
		return &d
	}

	return nil
}
