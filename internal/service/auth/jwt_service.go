// Package auth provides token issuing/verification and password hashing.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
// Tokens carry the user's id, email and role so callers can branch on role
// without a second lookup.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// GenerateRefreshToken creates a signed refresh token for the user.
	// Refresh tokens have a longer lifetime and are exchanged for new
	// access tokens.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error)

	// GenerateTokenPair creates an access + refresh token pair.
	GenerateTokenPair(ctx context.Context, user *domain.User) (TokenPair, error)

	// ValidateToken validates an access token and extracts its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateRefreshToken validates a refresh token and extracts its claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// TokenPair bundles an access token with its refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Claims is the verified content of a token.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Email and Role mirror the user record at issue time.
	Email string      `json:"email,omitempty"`
	Role  domain.Role `json:"role,omitempty"`

	// TokenType is "access" or "refresh"; it prevents token misuse across
	// contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Actor converts the claims into the request actor.
func (c *Claims) Actor() domain.Actor {
	return domain.Actor{UserID: c.UserID, Email: c.Email, Role: c.Role}
}
