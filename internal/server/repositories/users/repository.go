package users

import (
	"context"

	"github.com/dmitrijs2005/peercolab/internal/server/models"
)

// Repository stores registered users.
type Repository interface {
	// Create inserts u; an existing email yields common.ErrorConflict.
	Create(ctx context.Context, u *models.User) error
	// GetByEmail returns common.ErrorNotFound for unknown emails.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, email string) (bool, error)
}
