// Package cli implements the PeerColab administrative commands: schema
// setup, demo data, user registration and quick lookups against the store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/peercolab/internal/logging"
	"github.com/dmitrijs2005/peercolab/internal/server/config"
	"github.com/dmitrijs2005/peercolab/internal/server/store"
)

var ErrUsage = errors.New("usage: cli [flags] create-db|migrate|seed|register|login|projects")

type App struct {
	store *store.Store
	out   io.Writer
}

// NewApp opens the store described by cfg. Logs go to stderr so command
// output on out stays clean.
func NewApp(ctx context.Context, cfg *config.Config, out io.Writer) (*App, error) {
	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	st, err := store.Open(ctx, cfg.DatabaseDSN, cfg.SchemaFile, logger, store.WithConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{store: st, out: out}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "create-db":
		return a.createDB(ctx)
	case "migrate":
		return a.migrate(ctx)
	case "seed":
		return a.seed(ctx)
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "projects":
		return a.projects(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, ErrUsage)
	}
}

func (a *App) createDB(ctx context.Context) error {
	if err := a.store.CreateSchema(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Schema created")
	return nil
}

func (a *App) migrate(ctx context.Context) error {
	if err := a.store.Migrate(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Migrations applied")
	return nil
}
