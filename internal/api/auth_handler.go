package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/roles"
	"github.com/spotwish/spotwish-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	roleResolver     *roles.Resolver
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	roleResolver *roles.Resolver,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		roleResolver:     roleResolver,
	}
}

// Register handles the /register endpoint. New users always receive the
// "user" role; there is no way to register an admin.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+sanitizeValidationError(err))
		return
	}

	roleID, err := h.roleResolver.ResolveID(r.Context(), domain.RoleUser)
	if err != nil {
		slog.Error("failed to resolve user role", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Database error, please try again")
		return
	}

	user, err := domain.NewUser(req.Login, req.Password, roleID)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		// A taken login surfaces like any other persistence failure here;
		// the probing caller learns nothing about existing accounts.
		slog.Error("failed to create user", "error", err, "login", req.Login)
		RespondWithError(w, r, http.StatusInternalServerError, "Database error, please try again")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		User:    user,
		Token:   token,
	})
}

// Login handles the /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+sanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByLogin(r.Context(), req.Login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get user by login", "error", err, "login", req.Login)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Logout handles the /logout endpoint. The presented token is denylisted
// server-side so it cannot be used again.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := getClaimsFromContext(r)
	if claims == nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	h.jwtService.Revoke(r.Context(), claims)

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "User logged out successfully",
	})
}

// Refresh handles the /refresh endpoint. It exchanges a still-valid token,
// or one expired within the grace period, for a fresh one. The old token is
// revoked so it cannot be replayed.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	tokenString, err := bearerToken(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	claims, err := h.jwtService.ValidateForRefresh(r.Context(), tokenString)
	if err != nil {
		HandleAPIError(w, r, err, "Could not refresh token")
		return
	}

	h.jwtService.Revoke(r.Context(), claims)

	token, err := h.jwtService.GenerateToken(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("failed to generate refreshed token", "error", err, "user_id", claims.UserID)
		RespondWithError(w, r, http.StatusInternalServerError, "Could not refresh token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Me handles the /me endpoint, returning the identity resolved from the
// presented token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), identity.UserID())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// bearerToken extracts the raw bearer token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}
