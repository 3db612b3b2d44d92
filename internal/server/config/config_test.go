package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "peercolab.db", c.DatabaseDSN)
	assert.Equal(t, "schema/tables.sql", c.SchemaFile)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.SessionTokenValidityDuration)
	assert.Equal(t, 10*time.Second, c.HealthCheckInterval)
	assert.Equal(t, 16384, c.ScryptN)
	assert.Equal(t, 8, c.ScryptR)
	assert.Equal(t, 1, c.ScryptP)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestScryptParams(t *testing.T) {
	c := Config{ScryptN: 1024, ScryptR: 4, ScryptP: 2}
	p := c.ScryptParams()
	assert.Equal(t, 1024, p.N)
	assert.Equal(t, 4, p.R)
	assert.Equal(t, 2, p.P)
}

func TestValueFlags(t *testing.T) {
	got := ValueFlags()
	assert.Contains(t, got, "-d")
	assert.Contains(t, got, "-c")
	assert.Contains(t, got, "-config")
	assert.NotContains(t, got, "-teacher")

	got[0] = "mutated"
	assert.Equal(t, "-a", serverFlags[0])
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, t.TempDir(), "conf.json", map[string]any{
		"session_token_validity_duration": "30s",
		"health_check_interval":           "2s",
	})

	os.Args = []string{"testbin", "-c", path}
	c := LoadConfig()
	assert.Equal(t, 30*time.Second, c.SessionTokenValidityDuration)
	assert.Equal(t, 2*time.Second, c.HealthCheckInterval)

	os.Args = []string{"testbin", "-c", path, "-d", "x.db"}
	c = LoadConfig()
	assert.Equal(t, 30*time.Second, c.SessionTokenValidityDuration)
	assert.Equal(t, "x.db", c.DatabaseDSN)

	os.Args = []string{"testbin", "-c", path, "-t", "5"}
	c = LoadConfig()
	assert.Equal(t, 5*time.Minute, c.SessionTokenValidityDuration)
}

func TestLoadConfig_RejectsInvalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, args := range [][]string{
		{"testbin", "-i", "0s"},
		{"testbin", "-i", "-5s"},
		{"testbin", "-t", "0"},
		{"testbin", "-n", "1000"},
	} {
		os.Args = args
		require.Panics(t, func() { LoadConfig() }, args)
	}
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	bad := c
	bad.HealthCheckInterval = 0
	require.ErrorContains(t, bad.Validate(), "health check interval")

	bad = c
	bad.ScryptR = 0
	require.ErrorContains(t, bad.Validate(), "scrypt r and p")
}
