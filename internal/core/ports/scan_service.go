package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// SubmitScanInput carries everything needed to run the scan workflow for one
// uploaded image.
type SubmitScanInput struct {
	UserID   string
	Image    ImageUpload
	AnimalID string // optional passthrough
	Notes    string // optional passthrough
}

// ScanService orchestrates upload, classification, persistence, and alert
// evaluation.
type ScanService interface {
	// SubmitScan runs the full workflow and returns the classification
	// payload. AI failures never surface; persistence failures do.
	SubmitScan(ctx context.Context, input SubmitScanInput) (*domain.Classification, error)
	// ListScans returns scans visible to the requester, most recent first.
	ListScans(ctx context.Context, role, userID string) ([]*domain.Scan, error)
}
