package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"drivehub/internal/domain"
)

func TestShouldList_BelowQuorumHidden(t *testing.T) {
	e := &domain.Event{
		Status:               domain.StatusUpcoming,
		StartDate:            tomorrow(),
		ExpectedParticipants: 20,
		CurrentParticipants:  3,
	}

	assert.False(t, ShouldList(e, now))
}

func TestShouldList_QuorumReached(t *testing.T) {
	e := &domain.Event{
		Status:               domain.StatusUpcoming,
		StartDate:            tomorrow(),
		ExpectedParticipants: 20,
		CurrentParticipants:  10,
	}

	assert.True(t, ShouldList(e, now))
}

func TestShouldList_CompletedHidden(t *testing.T) {
	end := tomorrow()
	e := &domain.Event{
		Status:               domain.StatusCompleted,
		StartDate:            yesterday(),
		EndDate:              &end,
		ExpectedParticipants: 20,
		CurrentParticipants:  20,
	}

	assert.False(t, ShouldList(e, now))
}

func TestShouldList_EndPassedHidden(t *testing.T) {
	e := &domain.Event{
		Status:               domain.StatusActive,
		StartDate:            yesterday(),
		ExpectedParticipants: 20,
		CurrentParticipants:  20,
	}

	assert.False(t, ShouldList(e, now))
}

func TestShouldList_EndDateExtendsWindow(t *testing.T) {
	end := now.Add(time.Hour)
	e := &domain.Event{
		Status:               domain.StatusActive,
		StartDate:            yesterday(),
		EndDate:              &end,
		ExpectedParticipants: 20,
		CurrentParticipants:  10,
	}

	assert.True(t, ShouldList(e, now))
}
