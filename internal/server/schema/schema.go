// Package schema reads a line-per-statement DDL source and applies it.
//
// Each non-blank line is one statement; lines starting with "--" are
// comments. The whole source is applied in a single transaction, so a failed
// statement leaves the store untouched.
package schema

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/peercolab/internal/dbx"
)

// maxStatementSize bounds a single DDL line.
const maxStatementSize = 1 << 20

// Statements splits r into statements.
func Statements(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStatementSize)

	var stmts []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		stmts = append(stmts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return stmts, nil
}

// Load reads the statements from the file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	return Statements(f)
}

// Apply executes stmts in order inside one transaction.
func Apply(ctx context.Context, db *sql.DB, stmts []string) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
}
