package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivehub/internal/domain"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func yesterday() time.Time { return now.Add(-24 * time.Hour) }
func tomorrow() time.Time  { return now.Add(24 * time.Hour) }

func TestMinParticipants(t *testing.T) {
	tests := []struct {
		expected int
		want     int
	}{
		{1, 10},
		{10, 10},
		{29, 10},
		{30, 10},
		{31, 11},
		{45, 15},
		{100, 34},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinParticipants(tt.expected), "expected=%d", tt.expected)
	}
}

func TestReconcile_UpcomingBecomesActive(t *testing.T) {
	e := &domain.Event{
		Status:               domain.StatusUpcoming,
		StartDate:            yesterday(),
		ExpectedParticipants: 20,
	}

	d := Reconcile(e, now)

	require.NotNil(t, d)
	assert.Equal(t, domain.StatusActive, d.Status)
	assert.Equal(t, ReasonStarted, d.Reason)
	assert.Equal(t, SystemActor, d.UpdatedBy)
	assert.Equal(t, now, d.UpdatedAt)
}

func TestReconcile_EndPassedBelowQuorum(t *testing.T) {
	end := yesterday()
	e := &domain.Event{
		Status:               domain.StatusActive,
		StartDate:            now.Add(-48 * time.Hour),
		EndDate:              &end,
		ExpectedParticipants: 30,
		CurrentParticipants:  5,
	}

	d := Reconcile(e, now)

	require.NotNil(t, d)
	assert.Equal(t, domain.StatusNotCompleted, d.Status)
	assert.Equal(t, ReasonNotCompleted, d.Reason)
}

func TestReconcile_EndPassedAtQuorum(t *testing.T) {
	end := yesterday()
	e := &domain.Event{
		Status:               domain.StatusActive,
		StartDate:            now.Add(-48 * time.Hour),
		EndDate:              &end,
		ExpectedParticipants: 30,
		CurrentParticipants:  12,
	}

	d := Reconcile(e, now)

	require.NotNil(t, d)
	assert.Equal(t, domain.StatusCompleted, d.Status)
	assert.Equal(t, ReasonCompleted, d.Reason)
}

func TestReconcile_PostponementExpired(t *testing.T) {
	until := yesterday()
	e := &domain.Event{
		Status:               domain.StatusPostponed,
		StartDate:            tomorrow(),
		PostponedUntil:       &until,
		StatusReason:         "venue flooded",
		ExpectedParticipants: 20,
	}

	d := Reconcile(e, now)

	require.NotNil(t, d)
	assert.Equal(t, domain.StatusUpcoming, d.Status)
	assert.Equal(t, ReasonResumed, d.Reason)
	assert.Nil(t, d.PostponedUntil)
}

func TestReconcile_PostponementStillInEffect(t *testing.T) {
	until := tomorrow()
	e := &domain.Event{
		Status:               domain.StatusPostponed,
		StartDate:            now.Add(48 * time.Hour),
		PostponedUntil:       &until,
		ExpectedParticipants: 20,
	}

	assert.Nil(t, Reconcile(e, now))
}

func TestReconcile_EndPassedOverridesPostponement(t *testing.T) {
	// A postponed drive whose dates slipped entirely into the past still
	// resolves by the end-date rule first.
	until := tomorrow()
	e := &domain.Event{
		Status:               domain.StatusPostponed,
		StartDate:            yesterday(),
		PostponedUntil:       &until,
		ExpectedParticipants: 20,
		CurrentParticipants:  3,
	}

	d := Reconcile(e, now)

	require.NotNil(t, d)
	assert.Equal(t, domain.StatusNotCompleted, d.Status)
	assert.Nil(t, d.PostponedUntil)
}

func TestReconcile_FutureUpcomingUnchanged(t *testing.T) {
	e := &domain.Event{
		Status:               domain.StatusUpcoming,
		StartDate:            tomorrow(),
		ExpectedParticipants: 20,
	}

	assert.Nil(t, Reconcile(e, now))
}

func TestReconcile_ActiveWithinWindowUnchanged(t *testing.T) {
	end := tomorrow()
	e := &domain.Event{
		Status:               domain.StatusActive,
		StartDate:            yesterday(),
		EndDate:              &end,
		ExpectedParticipants: 20,
	}

	assert.Nil(t, Reconcile(e, now))
}

func TestReconcile_TerminalStatusesStable(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusCancelled} {
		e := &domain.Event{
			Status:               status,
			StartDate:            now.Add(-30 * 24 * time.Hour),
			ExpectedParticipants: 20,
		}

		assert.Nil(t, Reconcile(e, now), "status=%s", status)
		assert.Nil(t, Reconcile(e, now.Add(365*24*time.Hour)), "status=%s far future", status)
	}
}

func TestReconcile_NotCompletedStaysPutBelowQuorum(t *testing.T) {
	e := &domain.Event{
		Status:               domain.StatusNotCompleted,
		StartDate:            yesterday(),
		ExpectedParticipants: 30,
		CurrentParticipants:  5,
	}

	assert.Nil(t, Reconcile(e, now))
}

func TestReconcile_Idempotent(t *testing.T) {
	cases := []*domain.Event{
		{Status: domain.StatusUpcoming, StartDate: yesterday(), ExpectedParticipants: 20},
		{Status: domain.StatusActive, StartDate: now.Add(-48 * time.Hour), ExpectedParticipants: 30, CurrentParticipants: 15},
		{Status: domain.StatusPostponed, StartDate: tomorrow(), PostponedUntil: ptr(yesterday()), StatusReason: "rain", ExpectedParticipants: 20},
	}

	for _, e := range cases {
		first := Reconcile(e, now)
		if first == nil {
			continue
		}
		e.ApplyStatusDetail(*first)

		assert.Nil(t, Reconcile(e, now), "second pass must be a no-op, status=%s", e.Status)
	}
}

func ptr[T any](v T) *T { return &v }
