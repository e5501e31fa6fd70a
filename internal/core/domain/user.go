package domain

import (
	"errors"
	"time"
)

const (
	RoleFarmer = "farmer"
	RoleVet    = "vet"
	RoleAdmin  = "admin"
)

var ErrUsernameTaken = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found or inactive")

// User models an authenticated actor: a farmer, a vet, or an administrator.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FarmName     string    `json:"farmName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	IsActive     bool      `json:"isActive"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleFarmer || role == RoleVet || role == RoleAdmin
}

// OwnerScope returns the owner filter a requester is allowed to read with:
// empty (all records) for admins, otherwise the requester's own id. Every
// listing and lookup goes through this single rule.
func OwnerScope(role, userID string) string {
	if role == RoleAdmin {
		return ""
	}
	return userID
}
