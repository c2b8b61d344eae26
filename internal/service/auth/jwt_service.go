package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, revoked, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateForRefresh validates a token presented at the refresh
	// endpoint. Unlike ValidateToken it accepts tokens whose expiry lies
	// within the configured grace period, so a client can exchange a
	// recently expired token for a fresh one. Revoked tokens are rejected.
	ValidateForRefresh(ctx context.Context, tokenString string) (*Claims, error)

	// Revoke invalidates the token identified by the given claims so it can
	// no longer be used (server-side denylist). Used by logout and refresh.
	Revoke(ctx context.Context, claims *Claims)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
