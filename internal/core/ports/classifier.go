package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// ImageUpload is a validated in-memory image payload. Size and type filtering
// happen at the transport boundary before a Classifier or UploadStore sees it.
type ImageUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Classifier produces a health assessment for an uploaded image. It never
// fails: any upstream error is absorbed into a well-formed fallback result.
type Classifier interface {
	Classify(ctx context.Context, image ImageUpload) *domain.Classification
}
