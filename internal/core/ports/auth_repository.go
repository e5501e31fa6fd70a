package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUsernameTaken when the
	// username is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername retrieves an active user by username. Returns
	// domain.ErrUserNotFound when no active user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
