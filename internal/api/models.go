package api

import (
	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// The password must be confirmed by repeating it.
type RegisterRequest struct {
	Login                string `json:"login"                 validate:"required,max=255"`
	Password             string `json:"password"              validate:"required,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token"`
}

// TokenResponse defines the successful response for login and refresh.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse wraps a single user record, as returned by the me endpoint.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// MessageResponse defines a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateUserRequest defines the payload for updating a user. Omitted fields
// keep their current value. A new password must be confirmed.
type UpdateUserRequest struct {
	Login                *string `json:"login,omitempty"                 validate:"omitempty,min=1,max=255"`
	Password             *string `json:"password,omitempty"              validate:"omitempty,min=1,max=72"`
	PasswordConfirmation *string `json:"password_confirmation,omitempty"`
}

// CreateVacationSpotRequest defines the payload for creating a vacation
// spot. Coordinates are pointers so 0 still satisfies "required".
type CreateVacationSpotRequest struct {
	Name      string   `json:"name"      validate:"required,max=255"`
	Latitude  *float64 `json:"latitude"  validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// UpdateVacationSpotRequest defines the payload for updating a vacation
// spot. Omitted fields keep their current value.
type UpdateVacationSpotRequest struct {
	Name      *string  `json:"name,omitempty"      validate:"omitempty,min=1,max=255"`
	Latitude  *float64 `json:"latitude,omitempty"  validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// CreateWishlistRequest defines the payload for adding a vacation spot to
// the caller's wishlist.
type CreateWishlistRequest struct {
	VacationSpotID uuid.UUID `json:"vacation_spot_id" validate:"required"`
}
