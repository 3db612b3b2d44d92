package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/peercolab/internal/dbx"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/admins"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/files"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/members"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/projects"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can use
// the same repositories against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Admins(db dbx.DBTX) admins.Repository
	Members(db dbx.DBTX) members.Repository
	Files(db dbx.DBTX) files.Repository
}
