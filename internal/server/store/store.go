// Package store is the PeerColab access store: a SQLite-backed connection
// pool with the user, project and file services bound to it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/peercolab/internal/common"
	"github.com/dmitrijs2005/peercolab/internal/filex"
	"github.com/dmitrijs2005/peercolab/internal/logging"
	"github.com/dmitrijs2005/peercolab/internal/server/config"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/peercolab/internal/server/schema"
	"github.com/dmitrijs2005/peercolab/internal/server/services"

	_ "modernc.org/sqlite"
)

// connParams are appended to every DSN. Write transactions take the lock at
// BEGIN so read-then-write units of work do not deadlock on upgrade.
const connParams = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_txlock=immediate"

type Store struct {
	db          *sql.DB
	schemaFile  string
	cfg         *config.Config
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	users    *services.UserService
	projects *services.ProjectService
	files    *services.FileService
}

type Option func(*Store)

// WithConfig supplies the session token and password hashing settings.
func WithConfig(cfg *config.Config) Option {
	return func(s *Store) { s.cfg = cfg }
}

func WithRepositoryManager(m repomanager.RepositoryManager) Option {
	return func(s *Store) { s.repomanager = m }
}

// Open opens the pool for dsn and verifies connectivity. schemaFile is the
// DDL source used by CreateSchema.
func Open(ctx context.Context, dsn, schemaFile string, logger logging.Logger, opts ...Option) (*Store, error) {
	s := &Store{
		schemaFile:  schemaFile,
		repomanager: repomanager.NewSQLiteRepositoryManager(logger),
		logger:      logger.With("module", "store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg == nil {
		s.cfg = &config.Config{}
		s.cfg.LoadDefaults()
	}

	if isPlainPath(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite", buildDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}
	// every connection to :memory: is a separate database
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	s.db = db
	s.users = services.NewUserService(db, s.repomanager, logger, s.cfg)
	s.projects = services.NewProjectService(db, s.repomanager, logger)
	s.files = services.NewFileService(db, s.repomanager, logger)

	s.logger.Info(ctx, "store opened", "dsn", dsn)
	return s, nil
}

// isPlainPath reports whether dsn is a bare file path rather than a URI or
// an in-memory database.
func isPlainPath(dsn string) bool {
	return dsn != "" && !strings.HasPrefix(dsn, "file:") &&
		!strings.Contains(dsn, ":memory:") && !strings.Contains(dsn, "?")
}

func buildDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + connParams
	}
	return dsn + "?" + connParams
}

// CreateSchema applies the schema file, one statement per line, in a single
// transaction.
func (s *Store) CreateSchema(ctx context.Context) error {
	stmts, err := schema.Load(s.schemaFile)
	if err != nil {
		return err
	}
	if err := schema.Apply(ctx, s.db, stmts); err != nil {
		s.logger.Error(ctx, "create schema failed", "file", s.schemaFile, "error", err)
		return err
	}
	s.logger.Info(ctx, "schema created", "file", s.schemaFile, "statements", len(stmts))
	return nil
}

// Migrate applies the embedded migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.repomanager.RunMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Users() *services.UserService       { return s.users }
func (s *Store) Projects() *services.ProjectService { return s.projects }
func (s *Store) Files() *services.FileService       { return s.files }
