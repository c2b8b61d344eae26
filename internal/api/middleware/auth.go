package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spotwish/spotwish-api/internal/api/shared"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/service/roles"
	"github.com/spotwish/spotwish-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes. It validates the
// bearer token, loads the user, and classifies the caller as an admin or
// regular-user identity for the authorization policy.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
	resolver   *roles.Resolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(
	jwtService auth.JWTService,
	userStore store.UserStore,
	resolver *roles.Resolver,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
		resolver:   resolver,
	}
}

// Authenticate validates JWT tokens from the Authorization header and adds
// the caller's identity and claims to the request context. Requests without
// a valid token are rejected with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, claims, err := m.resolve(r)
		if err != nil {
			respondAuthError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
		ctx = context.WithValue(ctx, shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate resolves the caller's identity when a usable bearer
// token is present and proceeds anonymously otherwise. Public endpoints that
// merely adjust their output for authenticated callers use this.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, claims, err := m.resolve(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
		ctx = context.WithValue(ctx, shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve extracts and validates the bearer token, then builds the caller's
// identity from the stored user and the resolved admin role ID.
func (m *AuthMiddleware) resolve(r *http.Request) (*authz.Identity, *auth.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil, auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, nil, auth.ErrInvalidToken
	}

	claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
	if err != nil {
		return nil, nil, err
	}

	user, err := m.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Token outlived its user.
			return nil, nil, auth.ErrInvalidToken
		}
		return nil, nil, err
	}

	adminRoleID, err := m.resolver.ResolveID(r.Context(), domain.RoleAdmin)
	if err != nil {
		return nil, nil, err
	}

	var identity authz.Identity
	if user.RoleID == adminRoleID {
		identity = authz.AdminIdentity(user.ID)
	} else {
		identity = authz.UserIdentity(user.ID)
	}

	return &identity, claims, nil
}

func respondAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
	case errors.Is(err, auth.ErrExpiredToken):
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
	default:
		slog.Error("failed to authenticate request", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
	}
}
