// Package admins persists the project -> admin mapping.
package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create fails with common.ErrorConflict if the project already has an admin.
func (r *SQLiteRepository) Create(ctx context.Context, projectID, email string) error {

	query := `INSERT INTO admins (project_id, email) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, projectID, email); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetEmail(ctx context.Context, projectID string) (string, error) {

	query := `SELECT email FROM admins WHERE project_id = ?`

	var email string
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return email, nil
}

func (r *SQLiteRepository) DeleteByProject(ctx context.Context, projectID string) error {

	query := `DELETE FROM admins WHERE project_id = ?`

	if _, err := r.db.ExecContext(ctx, query, projectID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
