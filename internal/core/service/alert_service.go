package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// AlertService exposes role-scoped alert listing and acknowledgement.
type AlertService struct {
	repo     ports.AlertRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewAlertService(repo ports.AlertRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *AlertService {
	return &AlertService{repo: repo, activity: activity, logger: logger}
}

// ListAlerts returns alerts visible to the requester, most recent first.
func (s *AlertService) ListAlerts(ctx context.Context, role, userID string) ([]*domain.Alert, error) {
	return s.repo.List(ctx, domain.OwnerScope(role, userID))
}

// MarkRead acknowledges an alert. Alerts outside the requester's scope are
// reported as not found; re-acknowledging an already-read alert succeeds.
func (s *AlertService) MarkRead(ctx context.Context, id, role, userID string) error {
	if err := s.repo.MarkRead(ctx, id, domain.OwnerScope(role, userID)); err != nil {
		return err
	}

	s.activity.Enqueue(domain.ActivityEvent{
		UserID:    userID,
		Kind:      domain.ActivityAlertRead,
		RefID:     id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
