package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// ScanRepository defines persistence operations for scans.
type ScanRepository interface {
	Create(ctx context.Context, scan *domain.Scan) error
	// List returns scans visible to ownerID sorted by timestamp descending.
	// An empty ownerID returns all scans (admin scope).
	List(ctx context.Context, ownerID string) ([]*domain.Scan, error)
	// ListRecent returns the n most recent scans visible to ownerID, most
	// recent first.
	ListRecent(ctx context.Context, ownerID string, n int) ([]*domain.Scan, error)
	// CountByResult counts scans visible to ownerID, optionally restricted to
	// a single result. An empty result counts everything.
	CountByResult(ctx context.Context, ownerID string, result domain.ScanResult) (int64, error)
}
