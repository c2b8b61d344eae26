package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/store"
)

// MockVacationSpotStore implements store.VacationSpotStore for testing
type MockVacationSpotStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, spot *domain.VacationSpot) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.VacationSpot, error)
	ListFn    func(ctx context.Context) ([]*domain.VacationSpot, error)
	UpdateFn  func(ctx context.Context, spot *domain.VacationSpot) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Spots holds the data for the default implementation, keyed by ID
	Spots map[uuid.UUID]*domain.VacationSpot
}

// NewMockVacationSpotStore creates a new mock store with initialized defaults
func NewMockVacationSpotStore() *MockVacationSpotStore {
	return &MockVacationSpotStore{
		Spots: make(map[uuid.UUID]*domain.VacationSpot),
	}
}

// Create implements the VacationSpotStore interface
func (m *MockVacationSpotStore) Create(ctx context.Context, spot *domain.VacationSpot) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, spot)
	}

	for _, existing := range m.Spots {
		if existing.Name == spot.Name {
			return store.ErrSpotNameExists
		}
	}
	m.Spots[spot.ID] = spot
	return nil
}

// GetByID implements the VacationSpotStore interface
func (m *MockVacationSpotStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VacationSpot, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	spot, exists := m.Spots[id]
	if !exists {
		return nil, store.ErrSpotNotFound
	}
	return spot, nil
}

// List implements the VacationSpotStore interface
func (m *MockVacationSpotStore) List(ctx context.Context) ([]*domain.VacationSpot, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	spots := make([]*domain.VacationSpot, 0, len(m.Spots))
	for _, spot := range m.Spots {
		spots = append(spots, spot)
	}
	return spots, nil
}

// Update implements the VacationSpotStore interface
func (m *MockVacationSpotStore) Update(ctx context.Context, spot *domain.VacationSpot) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, spot)
	}

	if _, exists := m.Spots[spot.ID]; !exists {
		return store.ErrSpotNotFound
	}
	for id, existing := range m.Spots {
		if id != spot.ID && existing.Name == spot.Name {
			return store.ErrSpotNameExists
		}
	}
	m.Spots[spot.ID] = spot
	return nil
}

// Delete implements the VacationSpotStore interface
func (m *MockVacationSpotStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Spots[id]; !exists {
		return store.ErrSpotNotFound
	}
	delete(m.Spots, id)
	return nil
}
