package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the API. The login is globally unique
// and the role ID references one of the seeded roles.
type User struct {
	ID             uuid.UUID `json:"id"`
	Login          string    `json:"login"`
	Password       string    `json:"-"` // Plaintext, only set transiently during registration/updates
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	RoleID         int       `json:"role_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given login, password, and role ID.
// It generates a new UUID and sets the timestamps. The plaintext password is
// carried on the struct; the caller is responsible for hashing it before the
// user is stored.
func NewUser(login, password string, roleID int) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Login:     login,
		Password:  password,
		RoleID:    roleID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrInvalidID
	}

	if u.Login == "" {
		return ErrEmptyLogin
	}
	if len(u.Login) > 255 {
		return ErrLoginTooLong
	}

	if u.RoleID <= 0 {
		return ErrInvalidRole
	}

	if u.Password != "" {
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the database carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}
