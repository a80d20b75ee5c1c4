package ports

import (
	"context"

	"drivehub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.Event, error)
	ListNonTerminal(ctx context.Context) ([]*domain.Event, error)
	// Update persists creator edits guarded by the event version; a stale
	// version yields domain.ErrConflict.
	Update(ctx context.Context, e *domain.Event) error
	// ApplyStatus writes the status cluster guarded by version, bumping it
	// on success; a stale version yields domain.ErrConflict.
	ApplyStatus(ctx context.Context, eventID string, version int64, detail domain.StatusDetail) error
}
