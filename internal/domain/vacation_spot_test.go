package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVacationSpot(t *testing.T) {
	t.Parallel()

	t.Run("creates valid spot", func(t *testing.T) {
		t.Parallel()
		spot, err := NewVacationSpot("Lisbon", 38.7223, -9.1393)
		require.NoError(t, err)

		assert.Equal(t, "Lisbon", spot.Name)
		assert.InDelta(t, 38.7223, spot.Latitude, 0.0001)
		assert.InDelta(t, -9.1393, spot.Longitude, 0.0001)
		assert.False(t, spot.CreatedAt.IsZero())
	})

	t.Run("accepts boundary coordinates", func(t *testing.T) {
		t.Parallel()
		_, err := NewVacationSpot("North Pole", 90, 180)
		assert.NoError(t, err)

		_, err = NewVacationSpot("South Pole", -90, -180)
		assert.NoError(t, err)
	})

	tests := []struct {
		name     string
		spotName string
		lat, lon float64
		wantErr  error
	}{
		{
			name:     "empty name",
			spotName: "",
			wantErr:  ErrEmptySpotName,
		},
		{
			name:     "name too long",
			spotName: strings.Repeat("x", 256),
			wantErr:  ErrSpotNameTooLong,
		},
		{
			name:     "latitude above range",
			spotName: "Nowhere",
			lat:      90.01,
			wantErr:  ErrLatitudeOutOfRange,
		},
		{
			name:     "latitude below range",
			spotName: "Nowhere",
			lat:      -91,
			wantErr:  ErrLatitudeOutOfRange,
		},
		{
			name:     "longitude above range",
			spotName: "Nowhere",
			lon:      180.5,
			wantErr:  ErrLongitudeOutOfRange,
		},
		{
			name:     "longitude below range",
			spotName: "Nowhere",
			lon:      -181,
			wantErr:  ErrLongitudeOutOfRange,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spot, err := NewVacationSpot(tt.spotName, tt.lat, tt.lon)
			assert.Nil(t, spot)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewWishlist(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	spotID := uuid.New()

	entry, err := NewWishlist(userID, spotID)
	require.NoError(t, err)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, spotID, entry.VacationSpotID)

	_, err = NewWishlist(uuid.Nil, spotID)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = NewWishlist(userID, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidID)
}
