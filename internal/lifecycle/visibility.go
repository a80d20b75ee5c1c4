package lifecycle

import (
	"time"

	"drivehub/internal/domain"
)

// ShouldList decides whether a drive appears in public listings: its
// effective end must not have passed, it must not be completed, and it must
// have gathered the participant quorum. Detail fetches by id bypass this
// gate, so a direct link keeps working for low-signup drives.
func ShouldList(e *domain.Event, now time.Time) bool {
	if e.EffectiveEnd().Before(now) {
		return false
	}
	if e.Status == domain.StatusCompleted {
		return false
	}
	return e.CurrentParticipants >= MinParticipants(e.ExpectedParticipants)
}
