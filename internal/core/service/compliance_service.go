package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmsight/farm-health-api/internal/core/domain"
	"github.com/farmsight/farm-health-api/internal/core/ports"
)

// ComplianceService handles compliance document submission and listing.
type ComplianceService struct {
	repo    ports.ComplianceRepository
	uploads ports.UploadStore
	logger  zerolog.Logger
}

func NewComplianceService(repo ports.ComplianceRepository, uploads ports.UploadStore, logger zerolog.Logger) *ComplianceService {
	return &ComplianceService{repo: repo, uploads: uploads, logger: logger}
}

// Create stores an optional supporting document and appends a pending record.
// Review fields stay empty until an admin review capability exists.
func (s *ComplianceService) Create(ctx context.Context, input ports.CreateComplianceInput) (*domain.ComplianceRecord, error) {
	category := input.Category
	if category == "" {
		category = "general"
	}

	var documentPath string
	if input.Document != nil && len(input.Document.Data) > 0 {
		path, err := s.uploads.Save(ctx, "compliance", *input.Document)
		if err != nil {
			return nil, fmt.Errorf("store compliance document: %w", err)
		}
		documentPath = path
	}

	record := &domain.ComplianceRecord{
		UserID:       input.UserID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     category,
		DocumentPath: documentPath,
		Timestamp:    time.Now().UTC(),
		Status:       domain.CompliancePending,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to persist compliance record")
		return nil, fmt.Errorf("persist compliance record: %w", err)
	}

	s.logger.Info().Str("user_id", input.UserID).Str("title", input.Title).Msg("compliance document uploaded")
	return record, nil
}

// List returns compliance records visible to the requester, most recent first.
func (s *ComplianceService) List(ctx context.Context, role, userID string) ([]*domain.ComplianceRecord, error) {
	return s.repo.List(ctx, domain.OwnerScope(role, userID))
}
