package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusDetail_Validate(t *testing.T) {
	at := time.Now().UTC()
	until := at.Add(72 * time.Hour)

	tests := []struct {
		name    string
		detail  StatusDetail
		wantErr bool
	}{
		{"upcoming", Upcoming("", "u1", at), false},
		{"cancelled with reason", Cancelled("low interest", "u1", at), false},
		{"cancelled without reason", StatusDetail{Status: StatusCancelled, UpdatedAt: at}, true},
		{"postponed", Postponed(until, "venue closed", "u1", at), false},
		{"postponed without reason", StatusDetail{Status: StatusPostponed, PostponedUntil: &until, UpdatedAt: at}, true},
		{"postponed without until", StatusDetail{Status: StatusPostponed, Reason: "rain", UpdatedAt: at}, true},
		{"until on non-postponed", StatusDetail{Status: StatusActive, PostponedUntil: &until, UpdatedAt: at}, true},
		{"unknown status", StatusDetail{Status: Status("archived"), UpdatedAt: at}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.detail.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvent_EffectiveEnd(t *testing.T) {
	start := time.Now().UTC()
	end := start.Add(6 * time.Hour)

	e := &Event{StartDate: start}
	assert.Equal(t, start, e.EffectiveEnd())

	e.EndDate = &end
	assert.Equal(t, end, e.EffectiveEnd())
}

func TestEvent_ApplyStatusDetail_ClearsPostponement(t *testing.T) {
	at := time.Now().UTC()
	until := at.Add(48 * time.Hour)

	e := &Event{Status: StatusUpcoming}
	e.ApplyStatusDetail(Postponed(until, "heatwave", "u1", at))

	require.NotNil(t, e.PostponedUntil)
	assert.Equal(t, StatusPostponed, e.Status)

	e.ApplyStatusDetail(Upcoming("resumed", "system", at.Add(time.Hour)))

	assert.Nil(t, e.PostponedUntil)
	assert.Equal(t, "resumed", e.StatusReason)
}
