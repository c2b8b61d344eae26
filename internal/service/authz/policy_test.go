package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanManageSpots(t *testing.T) {
	t.Parallel()

	admin := AdminIdentity(uuid.New())
	user := UserIdentity(uuid.New())

	tests := []struct {
		name    string
		id      *Identity
		wantErr error
	}{
		{name: "anonymous", id: nil, wantErr: ErrUnauthenticated},
		{name: "regular user", id: &user, wantErr: ErrForbidden},
		{name: "admin", id: &admin, wantErr: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CanManageSpots(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanActOnOwned(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	owner := UserIdentity(ownerID)
	stranger := UserIdentity(uuid.New())
	admin := AdminIdentity(uuid.New())

	tests := []struct {
		name    string
		id      *Identity
		wantErr error
	}{
		{name: "anonymous", id: nil, wantErr: ErrUnauthenticated},
		{name: "owner", id: &owner, wantErr: nil},
		{name: "other user", id: &stranger, wantErr: ErrForbidden},
		{name: "admin acting on another user's resource", id: &admin, wantErr: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CanActOnOwned(tt.id, ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanViewUser(t *testing.T) {
	t.Parallel()

	const adminRoleID = 1

	adminUser := &domain.User{ID: uuid.New(), Login: "admin", RoleID: adminRoleID}
	regularUser := &domain.User{ID: uuid.New(), Login: "alice", RoleID: 2}

	// Admin records are hidden from everyone, identity does not matter.
	assert.ErrorIs(t, CanViewUser(adminUser, adminRoleID), ErrForbidden)
	assert.NoError(t, CanViewUser(regularUser, adminRoleID))
}

func TestUserListExcludedRole(t *testing.T) {
	t.Parallel()

	const adminRoleID = 1

	admin := AdminIdentity(uuid.New())
	user := UserIdentity(uuid.New())

	// Admins see every row; everyone else gets admin rows filtered out.
	assert.Equal(t, 0, UserListExcludedRole(&admin, adminRoleID))
	assert.Equal(t, adminRoleID, UserListExcludedRole(&user, adminRoleID))
	assert.Equal(t, adminRoleID, UserListExcludedRole(nil, adminRoleID))
}

func TestWishlistListScope(t *testing.T) {
	t.Parallel()

	assert.True(t, WishlistListScope(AdminIdentity(uuid.New())))
	assert.False(t, WishlistListScope(UserIdentity(uuid.New())))
}

func TestIdentityVariants(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	admin := AdminIdentity(id)
	assert.True(t, admin.IsAdmin())
	assert.Equal(t, id, admin.UserID())

	user := UserIdentity(id)
	assert.False(t, user.IsAdmin())
	assert.Equal(t, id, user.UserID())
}
