// Package members persists project memberships.
package members

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/peercolab/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, projectID, email string) error {

	query := `INSERT INTO members (project_id, email) VALUES (?, ?)
		ON CONFLICT (project_id, email) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, projectID, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, projectID, email string) (bool, error) {

	query := `SELECT EXISTS (SELECT 1 FROM members WHERE project_id = ? AND email = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, projectID, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *SQLiteRepository) ProjectIDs(ctx context.Context, email string) ([]string, error) {

	query := `SELECT DISTINCT project_id FROM members WHERE email = ?`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
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

func (r *SQLiteRepository) DeleteByProject(ctx context.Context, projectID string) error {

	query := `DELETE FROM members WHERE project_id = ?`

	if _, err := r.db.ExecContext(ctx, query, projectID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
