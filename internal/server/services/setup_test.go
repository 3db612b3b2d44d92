package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/peercolab/internal/logging"
	"github.com/dmitrijs2005/peercolab/internal/server/config"
	"github.com/dmitrijs2005/peercolab/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type testEnv struct {
	db       *sql.DB
	users    *UserService
	projects *ProjectService
	files    *FileService
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		SessionTokenValidityDuration: time.Hour,
		ScryptN:                      16,
		ScryptR:                      1,
		ScryptP:                      1,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "store.db") +
		"?_pragma=busy_timeout(5000)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm := repomanager.NewSQLiteRepositoryManager(logging.Nop())
	require.NoError(t, rm.RunMigrations(context.Background(), db))

	l := logging.Nop()
	return &testEnv{
		db:       db,
		users:    NewUserService(db, rm, l, testConfig()),
		projects: NewProjectService(db, rm, l),
		files:    NewFileService(db, rm, l),
	}
}

func (e *testEnv) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.QueryRow(query, args...).Scan(&n))
	return n
}

func (e *testEnv) register(t *testing.T, email string, teacher bool) {
	t.Helper()
	ok, err := e.users.Register(context.Background(), email, "pw", "First", "Last", teacher)
	require.NoError(t, err)
	require.True(t, ok)
}
