package ports

import (
	"context"

	"github.com/farmsight/farm-health-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FarmName string
	Role     string // defaults to farmer when empty
}

// AuthService issues signed session tokens on registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
