// Package users persists user accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/dbx"
	"github.com/dmitrijs2005/peercolab/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) error {

	query := `INSERT INTO users (email, hash, salt, first, last, is_teacher, scrypt_n, scrypt_r, scrypt_p)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, u.Email, u.Hash, u.Salt, u.FirstName, u.LastName, u.IsTeacher,
		u.ScryptN, u.ScryptR, u.ScryptP)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {

	query := `SELECT email, hash, salt, first, last, is_teacher, scrypt_n, scrypt_r, scrypt_p
		FROM users WHERE email = ?`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&u.Email, &u.Hash, &u.Salt, &u.FirstName, &u.LastName, &u.IsTeacher,
			&u.ScryptN, &u.ScryptR, &u.ScryptP)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, email string) (bool, error) {

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
