package users

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  email TEXT PRIMARY KEY,
  hash BLOB NOT NULL,
  salt BLOB NOT NULL,
  first TEXT NOT NULL,
  last TEXT NOT NULL,
  is_teacher INTEGER NOT NULL DEFAULT 0,
  scrypt_n INTEGER NOT NULL,
  scrypt_r INTEGER NOT NULL,
  scrypt_p INTEGER NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func alice() *models.User {
	return &models.User{
		Email:     "alice@x.com",
		Hash:      []byte("hash"),
		Salt:      []byte("salt"),
		FirstName: "Alice",
		LastName:  "Liddell",
		IsTeacher: true,
		ScryptN:   16,
		ScryptR:   1,
		ScryptP:   1,
	}
}

func TestCreateAndGetByEmail(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, alice()))

	got, err := r.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice(), got)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, alice()))
	err := r.Create(ctx, alice())
	require.ErrorIs(t, err, common.ErrorConflict)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, "alice@x.com").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestGetByEmail_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByEmail(context.Background(), "ghost@x.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestExists(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	ok, err := r.Exists(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Create(ctx, alice()))

	ok, err = r.Exists(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDBErrorsAreWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewSQLiteRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("disk full"))
	err = r.Create(ctx, alice())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: disk full")
	assert.NotErrorIs(t, err, common.ErrorConflict)

	mock.ExpectQuery(`SELECT email, hash, salt`).WithArgs("alice@x.com").WillReturnError(errors.New("db down"))
	_, err = r.GetByEmail(ctx, "alice@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("alice@x.com").WillReturnError(errors.New("db down"))
	_, err = r.Exists(ctx, "alice@x.com")
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
