package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/api/metrics"
	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// StatsCache abstracts the dashboard cache (Redis). A miss is not an error.
type StatsCache interface {
	Get(ctx context.Context, scope string) (*ports.DashboardStats, bool, error)
	Set(ctx context.Context, scope string, stats *ports.DashboardStats) error
}

const recentScanCount = 5

// StatsService aggregates dashboard counters across the scan, alert, and
// compliance stores, with a read-through cache in front.
type StatsService struct {
	scans      ports.ScanRepository
	alerts     ports.AlertRepository
	compliance ports.ComplianceRepository
	cache      StatsCache
	logger     zerolog.Logger
}

func NewStatsService(
	scans ports.ScanRepository,
	alerts ports.AlertRepository,
	compliance ports.ComplianceRepository,
	cache StatsCache,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{
		scans:      scans,
		alerts:     alerts,
		compliance: compliance,
		cache:      cache,
		logger:     logger,
	}
}

// Dashboard returns the summary for the requester's scope. Cache failures are
// soft: the summary is recomputed from the stores and the error is only logged.
func (s *StatsService) Dashboard(ctx context.Context, role, userID string) (*ports.DashboardStats, error) {
	scope := domain.OwnerScope(role, userID)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, scope)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, computing directly")
		} else if ok {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	stats, err := s.compute(ctx, scope)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, scope, stats); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *StatsService) compute(ctx context.Context, scope string) (*ports.DashboardStats, error) {
	total, err := s.scans.CountByResult(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	healthy, err := s.scans.CountByResult(ctx, scope, domain.ResultHealthy)
	if err != nil {
		return nil, err
	}
	unread, err := s.alerts.CountUnread(ctx, scope)
	if err != nil {
		return nil, err
	}
	pending, err := s.compliance.CountByStatus(ctx, scope, domain.CompliancePending)
	if err != nil {
		return nil, err
	}
	recent, err := s.scans.ListRecent(ctx, scope, recentScanCount)
	if err != nil {
		return nil, err
	}

	// Most-recent-first from the store, ascending for display.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	return &ports.DashboardStats{
		TotalScans:        total,
		HealthyScans:      healthy,
		AlertsCount:       unread,
		PendingCompliance: pending,
		RecentScans:       recent,
	}, nil
}
