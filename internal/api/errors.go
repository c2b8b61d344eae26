package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/service/auth"
	"github.com/spotwish/spotwish-api/internal/service/authz"
	"github.com/spotwish/spotwish-api/internal/service/wishlist"
	"github.com/spotwish/spotwish-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, authz.ErrUnauthenticated):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, authz.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Wishlist rule violations, uniqueness collisions, and malformed input
	case errors.Is(err, wishlist.ErrDuplicateSpot),
		errors.Is(err, wishlist.ErrWishlistFull),
		errors.Is(err, wishlist.ErrUnknownSpot),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message for
// the given error. Persistence failures collapse into a generic retry
// message; the detail only goes to the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, authz.ErrUnauthenticated):
		return "Authentication required"

	case errors.Is(err, authz.ErrForbidden):
		return "Forbidden"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrSpotNotFound):
		return "Vacation spot not found"

	case errors.Is(err, store.ErrWishlistNotFound):
		return "Wishlist entry not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrSpotNameExists):
		return "Vacation spot name is already taken"

	case errors.Is(err, store.ErrLoginExists):
		return "Login is already taken"

	case errors.Is(err, wishlist.ErrDuplicateSpot),
		errors.Is(err, wishlist.ErrWishlistFull),
		errors.Is(err, wishlist.ErrUnknownSpot):
		return err.Error()

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return err.Error()

	default:
		return "Database error, please try again"
	}
}

// sanitizeValidationError strips the validator library's verbose struct
// paths from a validation error and returns a user-friendly message.
func sanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example input: "Key: 'LoginRequest.Login' Error:Field validation
		// for 'Login' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly error messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "eqfield":
		return "confirmation does not match"
	case "gte", "lte":
		return "out of range"
	default:
		return "validation failed"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// response. When userMessage is non-empty it overrides the derived message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	message := userMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	RespondWithErrorAndLog(w, r, status, message, err)
}
