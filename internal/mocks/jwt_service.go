package mocks

import (
	"context"
	"time"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Function fields for customizable behavior
	GenerateTokenFn        func(ctx context.Context, user *domain.User) (string, error)
	GenerateRefreshTokenFn func(ctx context.Context, user *domain.User) (string, error)
	ValidateTokenFn        func(ctx context.Context, token string) (*auth.Claims, error)
	ValidateRefreshTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Static values for the default implementation
	Token        string
	RefreshToken string
	Claims       *auth.Claims
	Err          error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// NewMockJWTService creates a mock with usable default tokens.
func NewMockJWTService() *MockJWTService {
	return &MockJWTService{
		Token:        "test-access-token",
		RefreshToken: "test-refresh-token",
	}
}

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, user)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// GenerateRefreshToken implements the JWTService interface.
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, user)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.RefreshToken, nil
}

// GenerateTokenPair implements the JWTService interface.
func (m *MockJWTService) GenerateTokenPair(ctx context.Context, user *domain.User) (auth.TokenPair, error) {
	access, err := m.GenerateToken(ctx, user)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refresh, err := m.GenerateRefreshToken(ctx, user)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{Access: access, Refresh: refresh}, nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return nil, auth.ErrInvalidToken
}

// ValidateRefreshToken implements the JWTService interface.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, token)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return nil, auth.ErrInvalidRefreshToken
}

// ClaimsForUser builds valid-looking claims for the given user, handy for
// wiring ValidateToken in handler tests.
func ClaimsForUser(user *domain.User) *auth.Claims {
	now := time.Now().UTC()
	return &auth.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: "access",
		Subject:   user.ID.String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}
