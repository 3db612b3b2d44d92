package files

import (
	"context"

	"github.com/dmitrijs2005/peercolab/internal/server/models"
)

// Repository describes storage of file metadata. File contents are not
// stored.
type Repository interface {
	// Create inserts f; a name already used in the project yields
	// common.ErrorConflict.
	Create(ctx context.Context, f *models.File) error

	// Get returns common.ErrorNotFound for unknown ids.
	Get(ctx context.Context, id string) (*models.File, error)

	ExistsByName(ctx context.Context, projectID, name string) (bool, error)

	// IDsByProject lists the file ids of a project.
	IDsByProject(ctx context.Context, projectID string) ([]string, error)

	// Delete removes one file; unknown ids yield common.ErrorNotFound.
	Delete(ctx context.Context, id string) error

	DeleteByProject(ctx context.Context, projectID string) error
}
