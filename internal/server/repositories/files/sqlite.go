// Package files persists file metadata.
package files

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

func (r *SQLiteRepository) Create(ctx context.Context, f *models.File) error {

	query := `INSERT INTO files (file_id, project_id, name) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, f.ID, f.ProjectID, f.Name); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.File, error) {

	query := `SELECT file_id, project_id, name FROM files WHERE file_id = ?`

	f := &models.File{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.ProjectID, &f.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *SQLiteRepository) ExistsByName(ctx context.Context, projectID, name string) (bool, error) {

	query := `SELECT EXISTS (SELECT 1 FROM files WHERE project_id = ? AND name = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, projectID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *SQLiteRepository) IDsByProject(ctx context.Context, projectID string) ([]string, error) {

	query := `SELECT file_id FROM files WHERE project_id = ?`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error selecting files: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {

	query := `DELETE FROM files WHERE file_id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *SQLiteRepository) DeleteByProject(ctx context.Context, projectID string) error {

	query := `DELETE FROM files WHERE project_id = ?`

	if _, err := r.db.ExecContext(ctx, query, projectID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
