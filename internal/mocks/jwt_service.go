package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// ValidateForRefreshFn allows test cases to mock the ValidateForRefresh behavior
	ValidateForRefreshFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims

	// RevokedIDs records every token ID passed to Revoke
	RevokedIDs []string
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// ValidateForRefresh implements the auth.JWTService interface
func (m *MockJWTService) ValidateForRefresh(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateForRefreshFn != nil {
		return m.ValidateForRefreshFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// Revoke implements the auth.JWTService interface
func (m *MockJWTService) Revoke(ctx context.Context, claims *auth.Claims) {
	if claims != nil {
		m.RevokedIDs = append(m.RevokedIDs, claims.ID)
	}
}
