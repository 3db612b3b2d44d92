package members

import "context"

// Repository stores project memberships.
type Repository interface {
	// Add is idempotent: adding an existing member is not an error.
	Add(ctx context.Context, projectID, email string) error
	Exists(ctx context.Context, projectID, email string) (bool, error)
	// ProjectIDs lists the projects email belongs to, without duplicates.
	ProjectIDs(ctx context.Context, email string) ([]string, error)
	DeleteByProject(ctx context.Context, projectID string) error
}
