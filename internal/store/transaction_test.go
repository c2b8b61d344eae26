package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spotwish/spotwish-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

func TestRunInTransaction(t *testing.T) {
	t.Parallel()

	t.Run("commits when the function succeeds", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		called := false
		err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			called = true
			assert.NotNil(t, tx)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the function fails", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		wantErr := errors.New("business rule violated")
		err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure is reported", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			t.Fatal("function should not run when begin fails")
			return nil
		})
		assert.ErrorContains(t, err, "failed to begin transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure is reported", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("deadlock detected"))

		err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			return nil
		})
		assert.ErrorContains(t, err, "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panics roll back and re-raise", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
