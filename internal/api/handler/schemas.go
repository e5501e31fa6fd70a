package handler

import "github.com/farmsight/farm-health-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is returned by operations whose only payload is a note.
type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"omitempty,email"`
	FarmName string `json:"farmName"`
	Role     string `json:"role"     validate:"omitempty,oneof=farmer vet admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	FarmName string `json:"farmName,omitempty"`
}

type authResponse struct {
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
		FarmName: u.FarmName,
	}
}

// --- Health ---

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
