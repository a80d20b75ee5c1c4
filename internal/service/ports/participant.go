package ports

import (
	"context"

	"drivehub/internal/domain"
)

// ParticipantRepo owns the enrollment rows and the paired
// current_participants counter. Join and Leave apply both effects in a
// single transaction.
type ParticipantRepo interface {
	Join(ctx context.Context, eventID, userID string) (*domain.Participant, error)
	Leave(ctx context.Context, eventID, userID string) error
	Exists(ctx context.Context, eventID, userID string) (bool, error)
}
