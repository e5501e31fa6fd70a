package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// CreateComplianceInput carries a compliance submission. Document is optional.
type CreateComplianceInput struct {
	UserID      string
	Title       string
	Description string
	Category    string // defaults to "general" when empty
	Document    *ImageUpload
}

// ComplianceService handles compliance document submission and listing.
type ComplianceService interface {
	Create(ctx context.Context, input CreateComplianceInput) (*domain.ComplianceRecord, error)
	List(ctx context.Context, role, userID string) ([]*domain.ComplianceRecord, error)
}
