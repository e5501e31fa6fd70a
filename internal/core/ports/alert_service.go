package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// AlertService exposes alert listing and acknowledgement scoped by requester
// role.
type AlertService interface {
	ListAlerts(ctx context.Context, role, userID string) ([]*domain.Alert, error)
	MarkRead(ctx context.Context, id, role, userID string) error
}
