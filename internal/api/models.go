package api

import (
	"github.com/google/uuid"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/service/auth"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest defines the payload for the token refresh endpoint.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse defines the successful response for the token refresh
// endpoint. Refresh only ever re-issues the access token; a new refresh
// token requires a fresh login.
type RefreshResponse struct {
	Access string `json:"access"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// NewUserResponse builds a UserResponse from a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}

// RegisterResponse defines the successful response for both registration
// endpoints.
type RegisterResponse struct {
	User    UserResponse   `json:"user"`
	Tokens  auth.TokenPair `json:"tokens"`
	Message string         `json:"message"`
}

// LoginResponse defines the successful response for the login endpoint.
// Unlike registration, the tokens sit at the top level next to the user.
type LoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

// MeResponse defines the response for the current-user endpoint. Profile is
// null for admins and any user without one.
type MeResponse struct {
	User    UserResponse   `json:"user"`
	Profile domain.Profile `json:"profile"`
}
