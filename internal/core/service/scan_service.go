package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/api/metrics"
	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// ScanService orchestrates the scan workflow: validate upload, classify,
// persist, evaluate alert, respond with the classification payload.
type ScanService struct {
	scans      ports.ScanRepository
	alerts     ports.AlertRepository
	classifier ports.Classifier
	uploads    ports.UploadStore
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewScanService(
	scans ports.ScanRepository,
	alerts ports.AlertRepository,
	classifier ports.Classifier,
	uploads ports.UploadStore,
	activity ports.ActivityRecorder,
	logger zerolog.Logger,
) *ScanService {
	return &ScanService{
		scans:      scans,
		alerts:     alerts,
		classifier: classifier,
		uploads:    uploads,
		activity:   activity,
		logger:     logger,
	}
}

// SubmitScan runs one pass of the workflow. The classifier cannot fail it:
// upstream errors are absorbed into a fallback result before this method sees
// them. Persistence errors abort with no compensating rollback; the write path
// is at-most-once.
func (s *ScanService) SubmitScan(ctx context.Context, input ports.SubmitScanInput) (*domain.Classification, error) {
	if len(input.Image.Data) == 0 {
		return nil, domain.ErrNoImage
	}

	imagePath, err := s.uploads.Save(ctx, "scans", input.Image)
	if err != nil {
		return nil, fmt.Errorf("store scan image: %w", err)
	}

	classification := s.classifier.Classify(ctx, input.Image)

	now := time.Now().UTC()
	scan := &domain.Scan{
		UserID:          input.UserID,
		AnimalID:        input.AnimalID,
		Result:          classification.Result,
		Confidence:      classification.Confidence,
		ImagePath:       imagePath,
		Notes:           input.Notes,
		Timestamp:       now,
		Reviewed:        false,
		AnimalType:      classification.AnimalType,
		Observations:    classification.HealthAssessment.Observations,
		KeyIssues:       classification.HealthAssessment.KeyIssues,
		Recommendations: classification.Recommendations,
	}

	if err := s.scans.Create(ctx, scan); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to persist scan")
		return nil, fmt.Errorf("persist scan: %w", err)
	}
	metrics.ScansProcessedTotal.WithLabelValues(string(classification.Result)).Inc()

	if classification.Result != domain.ResultHealthy {
		alert := buildHealthAlert(input.UserID, classification, now)
		if err := s.alerts.Create(ctx, alert); err != nil {
			s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to persist alert")
			return nil, fmt.Errorf("persist alert: %w", err)
		}
		metrics.AlertsCreatedTotal.WithLabelValues(alert.Priority).Inc()

		s.activity.Enqueue(domain.ActivityEvent{
			UserID:    input.UserID,
			Kind:      domain.ActivityAlertCreated,
			RefID:     alert.ID,
			Detail:    alert.Message,
			Timestamp: now,
		})
	}

	s.activity.Enqueue(domain.ActivityEvent{
		UserID:    input.UserID,
		Kind:      domain.ActivityScanRecorded,
		RefID:     scan.ID,
		Detail:    string(classification.Result),
		Timestamp: now,
	})

	s.logger.Info().
		Str("user_id", input.UserID).
		Str("result", string(classification.Result)).
		Float64("confidence", classification.Confidence).
		Str("animal_type", classification.AnimalType).
		Msg("scan completed")

	return classification, nil
}

// ListScans returns scans visible to the requester, most recent first.
func (s *ScanService) ListScans(ctx context.Context, role, userID string) ([]*domain.Scan, error) {
	return s.scans.List(ctx, domain.OwnerScope(role, userID))
}

// buildHealthAlert composes the alert for a non-healthy scan: high priority
// for untreatable results, medium otherwise.
func buildHealthAlert(userID string, c *domain.Classification, ts time.Time) *domain.Alert {
	priority := domain.PriorityMedium
	if c.Result == domain.ResultUntreatable {
		priority = domain.PriorityHigh
	}

	animal := c.AnimalType
	if animal == "" || animal == "unknown" {
		animal = "Animal"
	}

	msg := fmt.Sprintf("Scan detected %s condition (%d%% confidence).",
		c.Result, int(math.Round(c.Confidence*100)))
	if len(c.HealthAssessment.KeyIssues) > 0 {
		msg += " Issues: " + strings.Join(c.HealthAssessment.KeyIssues, ", ")
	}

	return &domain.Alert{
		UserID:    userID,
		Type:      domain.AlertTypeHealth,
		Title:     "Animal Health Alert - " + animal,
		Message:   msg,
		Priority:  priority,
		Timestamp: ts,
		Read:      false,
	}
}
