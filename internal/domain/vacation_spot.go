package domain

import (
	"time"

	"github.com/google/uuid"
)

// VacationSpot represents a destination users can add to their wishlists.
// The name is globally unique; coordinates are validated to the usual
// geographic ranges.
type VacationSpot struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVacationSpot creates a new VacationSpot with a generated ID and
// timestamps. Returns an error if validation fails.
func NewVacationSpot(name string, latitude, longitude float64) (*VacationSpot, error) {
	now := time.Now().UTC()
	spot := &VacationSpot{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := spot.Validate(); err != nil {
		return nil, err
	}

	return spot, nil
}

// Validate checks if the VacationSpot has valid data.
func (s *VacationSpot) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidID
	}

	if s.Name == "" {
		return ErrEmptySpotName
	}
	if len(s.Name) > 255 {
		return ErrSpotNameTooLong
	}

	if s.Latitude < -90 || s.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}

	return nil
}
