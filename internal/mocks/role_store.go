package mocks

import (
	"context"

	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/store"
)

// MockRoleStore implements store.RoleStore for testing
type MockRoleStore struct {
	// GetByNameFn allows test cases to mock the GetByName behavior
	GetByNameFn func(ctx context.Context, name string) (*domain.Role, error)

	// Roles holds the seeded roles for the default implementation
	Roles map[string]*domain.Role

	// GetByNameCallCount tracks lookups, useful for cache assertions
	GetByNameCallCount int
}

// NewMockRoleStore creates a mock store seeded with the standard roles.
func NewMockRoleStore() *MockRoleStore {
	return &MockRoleStore{
		Roles: map[string]*domain.Role{
			domain.RoleAdmin: {ID: 1, Name: domain.RoleAdmin},
			domain.RoleUser:  {ID: 2, Name: domain.RoleUser},
		},
	}
}

// GetByName implements the RoleStore interface
func (m *MockRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	m.GetByNameCallCount++

	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}

	role, exists := m.Roles[name]
	if !exists {
		return nil, store.ErrRoleNotFound
	}
	return role, nil
}
