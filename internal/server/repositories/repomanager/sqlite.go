// Package repomanager provides a concrete RepositoryManager for SQLite,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/peercolab/internal/dbx"
	"github.com/dmitrijs2005/peercolab/internal/logging"
	"github.com/dmitrijs2005/peercolab/internal/server/migrations"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/admins"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/files"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/members"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/projects"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations
// and exposes a schema migration hook.
type SQLiteRepositoryManager struct {
	logger logging.Logger
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Projects returns a projects.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewSQLiteRepository(db)
}

// Admins returns an admins.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Admins(db dbx.DBTX) admins.Repository {
	return admins.NewSQLiteRepository(db)
}

// Members returns a members.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Members(db dbx.DBTX) members.Repository {
	return members.NewSQLiteRepository(db)
}

// Files returns a files.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Files(db dbx.DBTX) files.Repository {
	return files.NewSQLiteRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations. Already applied versions
// are skipped, so it is safe to call on every start.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{l: m.logger})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
// Migration progress is reported through l.
func NewSQLiteRepositoryManager(l logging.Logger) RepositoryManager {
	return &SQLiteRepositoryManager{logger: l.With("module", "migrations")}
}

// gooseLogger routes goose output through logging.Logger instead of stdout.
type gooseLogger struct {
	l logging.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf is only reached from goose's own command runner; it is logged, not
// turned into an exit.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}
