package ports

import (
	"context"

	"drivehub/internal/domain"
)

// StatusNotifier pushes a status change (new status plus reason) to
// downstream consumers. Implementations must not block the caller on
// delivery failures.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, event *domain.Event)
}
