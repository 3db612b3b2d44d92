// Package projects persists project rows.
package projects

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

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Project) error {

	query := `INSERT INTO projects (project_id, name) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetName(ctx context.Context, id string) (string, error) {

	query := `SELECT name FROM projects WHERE project_id = ?`

	var name string
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return name, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {

	query := `DELETE FROM projects WHERE project_id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
