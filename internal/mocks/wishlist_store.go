package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/store"
)

// MockWishlistStore implements store.WishlistStore for testing
type MockWishlistStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, wishlist *domain.Wishlist) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error)
	ListAllFn     func(ctx context.Context) ([]*domain.Wishlist, error)
	ListByUserFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Wishlist, error)
	CountByUserFn func(ctx context.Context, userID uuid.UUID) (int, error)
	ExistsFn      func(ctx context.Context, userID, spotID uuid.UUID) (bool, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	// Entries holds the data for the default implementation, keyed by ID
	Entries map[uuid.UUID]*domain.Wishlist
}

// NewMockWishlistStore creates a new mock store with initialized defaults
func NewMockWishlistStore() *MockWishlistStore {
	return &MockWishlistStore{
		Entries: make(map[uuid.UUID]*domain.Wishlist),
	}
}

// Create implements the WishlistStore interface
func (m *MockWishlistStore) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, wishlist)
	}
	m.Entries[wishlist.ID] = wishlist
	return nil
}

// GetByID implements the WishlistStore interface
func (m *MockWishlistStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wishlist, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	entry, exists := m.Entries[id]
	if !exists {
		return nil, store.ErrWishlistNotFound
	}
	return entry, nil
}

// ListAll implements the WishlistStore interface
func (m *MockWishlistStore) ListAll(ctx context.Context) ([]*domain.Wishlist, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}

	entries := make([]*domain.Wishlist, 0, len(m.Entries))
	for _, entry := range m.Entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

// ListByUser implements the WishlistStore interface
func (m *MockWishlistStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Wishlist, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	var entries []*domain.Wishlist
	for _, entry := range m.Entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// CountByUser implements the WishlistStore interface
func (m *MockWishlistStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx, userID)
	}

	count := 0
	for _, entry := range m.Entries {
		if entry.UserID == userID {
			count++
		}
	}
	return count, nil
}

// Exists implements the WishlistStore interface
func (m *MockWishlistStore) Exists(ctx context.Context, userID, spotID uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, userID, spotID)
	}

	for _, entry := range m.Entries {
		if entry.UserID == userID && entry.VacationSpotID == spotID {
			return true, nil
		}
	}
	return false, nil
}

// Delete implements the WishlistStore interface
func (m *MockWishlistStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Entries[id]; !exists {
		return store.ErrWishlistNotFound
	}
	delete(m.Entries, id)
	return nil
}

// WithTx implements the WishlistStore interface; the mock has no
// transactions.
func (m *MockWishlistStore) WithTx(tx *sql.Tx) store.WishlistStore {
	return m
}
