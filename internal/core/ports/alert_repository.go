package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// AlertRepository defines persistence operations for alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	// List returns alerts visible to ownerID sorted by timestamp descending.
	// An empty ownerID returns all alerts (admin scope).
	List(ctx context.Context, ownerID string) ([]*domain.Alert, error)
	// MarkRead flips read to true on the alert with the given id, restricted
	// to ownerID unless ownerID is empty. Returns domain.ErrAlertNotFound when
	// no visible alert matches. Marking an already-read alert is a no-op.
	MarkRead(ctx context.Context, id, ownerID string) error
	// CountUnread counts unread alerts visible to ownerID.
	CountUnread(ctx context.Context, ownerID string) (int64, error)
}
