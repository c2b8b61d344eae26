package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spotwish/spotwish-api/internal/domain"
	"github.com/spotwish/spotwish-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWishlistStore(t *testing.T) (*WishlistStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewWishlistStore(db, nil), mock
}

func wishlistColumns() []string {
	return []string{"id", "user_id", "vacation_spot_id", "created_at", "updated_at"}
}

func TestWishlistStoreCreate(t *testing.T) {
	t.Parallel()

	t.Run("inserts the entry", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		entry, err := domain.NewWishlist(uuid.New(), uuid.New())
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO wishlists").
			WithArgs(entry.ID, entry.UserID, entry.VacationSpotID, entry.CreatedAt, entry.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, wishlistStore.Create(context.Background(), entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dangling reference maps to ErrInvalidEntity", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		entry, err := domain.NewWishlist(uuid.New(), uuid.New())
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO wishlists").
			WillReturnError(&pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "wishlists_vacation_spot_id_fkey",
			})

		assert.ErrorIs(t, wishlistStore.Create(context.Background(), entry), store.ErrInvalidEntity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing IDs never reach the database", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		entry := &domain.Wishlist{ID: uuid.New(), UserID: uuid.New()}
		assert.Error(t, wishlistStore.Create(context.Background(), entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWishlistStoreGetByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored entry", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		id := uuid.New()
		userID := uuid.New()
		spotID := uuid.New()
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM wishlists").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(wishlistColumns()).
				AddRow(id, userID, spotID, now, now))

		entry, err := wishlistStore.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, spotID, entry.VacationSpotID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrWishlistNotFound", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		mock.ExpectQuery("SELECT (.+) FROM wishlists").
			WillReturnError(sql.ErrNoRows)

		_, err := wishlistStore.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrWishlistNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWishlistStoreListByUser(t *testing.T) {
	t.Parallel()

	wishlistStore, mock := newTestWishlistStore(t)

	userID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM wishlists").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(wishlistColumns()).
			AddRow(uuid.New(), userID, uuid.New(), now, now).
			AddRow(uuid.New(), userID, uuid.New(), now, now))

	entries, err := wishlistStore.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, userID, entries[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistStoreListAll(t *testing.T) {
	t.Parallel()

	wishlistStore, mock := newTestWishlistStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM wishlists").
		WillReturnRows(sqlmock.NewRows(wishlistColumns()).
			AddRow(uuid.New(), uuid.New(), uuid.New(), now, now))

	entries, err := wishlistStore.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistStoreCountByUser(t *testing.T) {
	t.Parallel()

	wishlistStore, mock := newTestWishlistStore(t)

	userID := uuid.New()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := wishlistStore.CountByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistStoreExists(t *testing.T) {
	t.Parallel()

	wishlistStore, mock := newTestWishlistStore(t)

	userID := uuid.New()
	spotID := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(userID, spotID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := wishlistStore.Exists(context.Background(), userID, spotID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWishlistStoreDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes the row", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		id := uuid.New()
		mock.ExpectExec("DELETE FROM wishlists").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, wishlistStore.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrWishlistNotFound", func(t *testing.T) {
		t.Parallel()
		wishlistStore, mock := newTestWishlistStore(t)

		mock.ExpectExec("DELETE FROM wishlists").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, wishlistStore.Delete(context.Background(), uuid.New()), store.ErrWishlistNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
