package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// ActivityRepository persists audit-trail events.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}

// ActivityRecorder is what services use to emit audit events. Enqueue must
// never block the caller beyond the recorder's internal buffer.
type ActivityRecorder interface {
	Enqueue(event domain.ActivityEvent)
}
