package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a single saved association between a user and a vacation spot.
type Wishlist struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	VacationSpotID uuid.UUID `json:"vacation_spot_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewWishlist creates a new Wishlist entry for the given user and spot with a
// generated ID and timestamps. Returns an error if validation fails.
func NewWishlist(userID, spotID uuid.UUID) (*Wishlist, error) {
	now := time.Now().UTC()
	w := &Wishlist{
		ID:             uuid.New(),
		UserID:         userID,
		VacationSpotID: spotID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate checks if the Wishlist has valid data.
func (w *Wishlist) Validate() error {
	if w.ID == uuid.Nil || w.UserID == uuid.Nil || w.VacationSpotID == uuid.Nil {
		return ErrInvalidID
	}
	return nil
}
