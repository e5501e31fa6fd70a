package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// ComplianceRepository defines persistence operations for compliance records.
type ComplianceRepository interface {
	Create(ctx context.Context, record *domain.ComplianceRecord) error
	// List returns records visible to ownerID sorted by timestamp descending.
	// An empty ownerID returns all records (admin scope).
	List(ctx context.Context, ownerID string) ([]*domain.ComplianceRecord, error)
	// CountByStatus counts records visible to ownerID with the given status.
	CountByStatus(ctx context.Context, ownerID string, status domain.ComplianceStatus) (int64, error)
}
