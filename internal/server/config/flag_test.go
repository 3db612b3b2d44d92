package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "seed",
				"-a", "127.0.0.1:9090", "-d", "test.db", "-f", "ddl.sql", "-s", "secret",
				"-t", "30", "-i", "5s", "-n", "1024", "-l", "debug", "-b", "zap",
			},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				DatabaseDSN:                  "test.db",
				SchemaFile:                   "ddl.sql",
				SecretKey:                    "secret",
				SessionTokenValidityDuration: 30 * time.Minute,
				HealthCheckInterval:          5 * time.Second,
				ScryptN:                      1024,
				LogLevel:                     "debug",
				LogBackend:                   "zap",
			},
		},
		{
			name:        "bad duration",
			args:        []string{"cmd", "-i", "often"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
