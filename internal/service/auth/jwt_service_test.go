package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-that-is-32-chars-long"

// newTestService builds an hmacJWTService with a controllable clock.
func newTestService(tokenLifetime, refreshGrace time.Duration, timeFunc func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(testSecret),
		tokenLifetime: tokenLifetime,
		refreshGrace:  refreshGrace,
		denylist:      NewDenylist(tokenLifetime + refreshGrace),
		timeFunc:      timeFunc,
		clockSkew:     2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		assert.Error(t, err)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
			RefreshGraceMinutes:  10,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	svc := newTestService(tokenLifetime, 0, func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := uuid.New()

	tests := []struct {
		name       string
		validateAt time.Time
		mutate     func(token string) string
		wantErr    error
	}{
		{
			name:       "valid token",
			validateAt: issuedAt.Add(30 * time.Minute),
			wantErr:    nil,
		},
		{
			name: "expired token",
			// Past lifetime plus the 2 minute clock skew leeway
			validateAt: issuedAt.Add(tokenLifetime + 5*time.Minute),
			wantErr:    ErrExpiredToken,
		},
		{
			name:       "expiry within clock skew still accepted",
			validateAt: issuedAt.Add(tokenLifetime + time.Minute),
			wantErr:    nil,
		},
		{
			name:       "tampered token",
			validateAt: issuedAt.Add(30 * time.Minute),
			mutate: func(token string) string {
				return token + "x"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name:       "malformed token",
			validateAt: issuedAt.Add(30 * time.Minute),
			mutate: func(token string) string {
				return "not.a.jwt"
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			now := issuedAt
			svc := newTestService(tokenLifetime, 0, func() time.Time { return now })

			token, err := svc.GenerateToken(context.Background(), userID)
			require.NoError(t, err)
			if tt.mutate != nil {
				token = tt.mutate(token)
			}

			now = tt.validateAt
			claims, err := svc.ValidateToken(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestValidateForRefresh(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	refreshGrace := 10 * time.Minute
	userID := uuid.New()

	tests := []struct {
		name       string
		validateAt time.Time
		wantErr    error
	}{
		{
			name:       "live token refreshes",
			validateAt: issuedAt.Add(30 * time.Minute),
			wantErr:    nil,
		},
		{
			name:       "recently expired token refreshes within grace",
			validateAt: issuedAt.Add(tokenLifetime + 5*time.Minute),
			wantErr:    nil,
		},
		{
			name: "token past grace is rejected",
			// Grace plus clock skew both exhausted
			validateAt: issuedAt.Add(tokenLifetime + refreshGrace + 3*time.Minute),
			wantErr:    ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			now := issuedAt
			svc := newTestService(tokenLifetime, refreshGrace, func() time.Time { return now })

			token, err := svc.GenerateToken(context.Background(), userID)
			require.NoError(t, err)

			now = tt.validateAt
			claims, err := svc.ValidateForRefresh(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)

			// The same token must fail strict validation once expired.
			if tt.validateAt.After(issuedAt.Add(tokenLifetime + 2*time.Minute)) {
				_, err := svc.ValidateToken(context.Background(), token)
				assert.ErrorIs(t, err, ErrExpiredToken)
			}
		})
	}
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	svc := newTestService(60*time.Minute, 10*time.Minute, func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	svc.Revoke(context.Background(), claims)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrRevokedToken)

	// A revoked token cannot be refreshed either.
	_, err = svc.ValidateForRefresh(context.Background(), token)
	assert.ErrorIs(t, err, ErrRevokedToken)

	// Revoking one token leaves others untouched.
	other, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), other)
	assert.NoError(t, err)
}
