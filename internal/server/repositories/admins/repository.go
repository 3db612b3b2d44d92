package admins

import "context"

// Repository stores the admin of each project. A project has exactly one
// admin, fixed at creation.
type Repository interface {
	Create(ctx context.Context, projectID, email string) error
	// GetEmail returns common.ErrorNotFound when the project has no admin row.
	GetEmail(ctx context.Context, projectID string) (string, error)
	DeleteByProject(ctx context.Context, projectID string) error
}
