package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLoginFn func(ctx context.Context, login string) (*domain.User, error)
	ListFn       func(ctx context.Context, excludeRoleID int) ([]*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by login
	Users       map[string]*domain.User
	CreateError error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Login]; exists {
		return store.ErrLoginExists
	}

	// Mirror the real store: plaintext never persists
	if user.HashedPassword == "" && user.Password != "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}

	m.Users[user.Login] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByLogin implements the UserStore interface
func (m *MockUserStore) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if m.GetByLoginFn != nil {
		return m.GetByLoginFn(ctx, login)
	}

	user, exists := m.Users[login]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context, excludeRoleID int) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, excludeRoleID)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		if excludeRoleID != 0 && user.RoleID == excludeRoleID {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	for login, existing := range m.Users {
		if existing.ID == user.ID {
			if login != user.Login {
				if _, taken := m.Users[user.Login]; taken {
					return store.ErrLoginExists
				}
				delete(m.Users, login)
			}
			if user.HashedPassword == "" && user.Password != "" {
				user.HashedPassword = "hashed:" + user.Password
				user.Password = ""
			}
			m.Users[user.Login] = user
			return nil
		}
	}
	return store.ErrUserNotFound
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for login, user := range m.Users {
		if user.ID == id {
			delete(m.Users, login)
			return nil
		}
	}
	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface; the mock has no transactions.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
