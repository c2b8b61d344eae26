package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/service/wishlist"
	"github.com/spotwish/spotwish-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "revoked token", err: auth.ErrRevokedToken, want: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "unauthenticated", err: authz.ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "forbidden", err: authz.ErrForbidden, want: http.StatusForbidden},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "spot not found", err: store.ErrSpotNotFound, want: http.StatusNotFound},
		{name: "wishlist not found", err: store.ErrWishlistNotFound, want: http.StatusNotFound},
		{name: "duplicate wishlist spot", err: wishlist.ErrDuplicateSpot, want: http.StatusBadRequest},
		{name: "wishlist full", err: wishlist.ErrWishlistFull, want: http.StatusBadRequest},
		{name: "unknown wishlist spot", err: wishlist.ErrUnknownSpot, want: http.StatusBadRequest},
		{name: "duplicate spot name", err: store.ErrSpotNameExists, want: http.StatusBadRequest},
		{name: "validation error", err: domain.ErrValidation, want: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("connection reset"), want: http.StatusInternalServerError},
		{
			name: "wrapped error keeps its mapping",
			err:  fmt.Errorf("looking up user: %w", store.ErrUserNotFound),
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "expired token", err: auth.ErrExpiredToken, want: "Token expired"},
		{name: "invalid token", err: auth.ErrInvalidToken, want: "Invalid token"},
		{name: "forbidden", err: authz.ErrForbidden, want: "Forbidden"},
		{name: "user not found", err: store.ErrUserNotFound, want: "User not found"},
		{name: "spot not found", err: store.ErrSpotNotFound, want: "Vacation spot not found"},
		{
			name: "internal details never leak",
			err:  errors.New("pq: connection refused host=10.0.0.3"),
			want: "Database error, please try again",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("strips struct paths from validator output", func(t *testing.T) {
		t.Parallel()
		err := ValidateRequest(LoginRequest{Password: "secret1"})
		assert.Equal(t, "Invalid Login: required field", sanitizeValidationError(err))
	})

	t.Run("reports mismatched confirmation", func(t *testing.T) {
		t.Parallel()
		err := ValidateRequest(RegisterRequest{
			Login:                "alice",
			Password:             "secret1",
			PasswordConfirmation: "other",
		})
		assert.Equal(t, "Invalid PasswordConfirmation: confirmation does not match", sanitizeValidationError(err))
	})

	t.Run("falls back for other errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", sanitizeValidationError(errors.New("boom")))
	})
}
