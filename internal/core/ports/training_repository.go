package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// TrainingRepository serves the training catalog. Implementations seed the
// default catalog when the backing collection is empty.
type TrainingRepository interface {
	List(ctx context.Context) ([]*domain.TrainingItem, error)
}
