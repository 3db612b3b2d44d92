package admins

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "admins.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE admins (project_id TEXT PRIMARY KEY, email TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestCreateAndGetEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, "p1", "a@x.com"))

	email, err := r.GetEmail(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	_, err = r.GetEmail(ctx, "p2")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_SecondAdminRejected(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, "p1", "a@x.com"))
	require.ErrorIs(t, r.Create(ctx, "p1", "b@x.com"), common.ErrorConflict)

	email, err := r.GetEmail(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email, "admin is immutable")
}

func TestDeleteByProject(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, "p1", "a@x.com"))
	require.NoError(t, r.Create(ctx, "p2", "a@x.com"))
	require.NoError(t, r.DeleteByProject(ctx, "p1"))

	_, err := r.GetEmail(ctx, "p1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.GetEmail(ctx, "p2")
	require.NoError(t, err)
}

func TestDBErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO admins`).WillReturnError(errors.New("disk full"))
	require.ErrorContains(t, r.Create(ctx, "p1", "a@x.com"), "db error: disk full")

	mock.ExpectQuery(`SELECT email FROM admins`).WillReturnError(errors.New("db down"))
	_, err = r.GetEmail(ctx, "p1")
	require.ErrorContains(t, err, "db error: db down")

	mock.ExpectExec(`DELETE FROM admins`).WillReturnError(errors.New("locked"))
	require.ErrorContains(t, r.DeleteByProject(ctx, "p1"), "db error: locked")

	require.NoError(t, mock.ExpectationsWereMet())
}
