package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/api/shared"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/authz"
)

// Thin forwards so handlers in this package read the same as the shared
// helpers they use.

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return shared.DecodeJSON(r, v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return shared.ValidateRequest(v)
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs the detailed error.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, userMessage string, err error) {
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// getIdentityFromContext extracts the authenticated caller's identity from
// the request context. The identity is placed there by the auth middleware;
// a nil result means the request is anonymous.
func getIdentityFromContext(r *http.Request) *authz.Identity {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(*authz.Identity)
	if !ok {
		return nil
	}
	return identity
}

// getClaimsFromContext extracts the validated token claims from the request
// context. Only set on requests that passed the auth middleware.
func getClaimsFromContext(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
