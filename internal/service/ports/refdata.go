package ports

import (
	"context"

	"drivehub/internal/domain"
)

// RefDataRepo reads the externally-owned city/category reference data.
// Find* accept either an id or a human name ("Delhi" or "Delhi, Delhi").
type RefDataRepo interface {
	FindCity(ctx context.Context, idOrName string) (*domain.City, error)
	FindCategory(ctx context.Context, idOrName string) (*domain.Category, error)
	ListCities(ctx context.Context) ([]*domain.City, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}
