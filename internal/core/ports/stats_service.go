package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// DashboardStats is the aggregate summary shown on the dashboard. RecentScans
// holds the 5 most recent scans in ascending timestamp order for display.
type DashboardStats struct {
	TotalScans        int64          `json:"totalScans"`
	HealthyScans      int64          `json:"healthyScans"`
	AlertsCount       int64          `json:"alertsCount"`
	PendingCompliance int64          `json:"pendingCompliance"`
	RecentScans       []*domain.Scan `json:"recentScans"`
}

// StatsService computes dashboard summaries scoped by requester role.
type StatsService interface {
	Dashboard(ctx context.Context, role, userID string) (*DashboardStats, error)
}
