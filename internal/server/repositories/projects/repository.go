package projects

import (
	"context"

	"github.com/dmitrijs2005/peercolab/internal/server/models"
)

// Repository stores project rows.
type Repository interface {
	Create(ctx context.Context, p *models.Project) error
	// GetName returns common.ErrorNotFound for unknown ids.
	GetName(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}
