// Package config handles configuration for the PeerColab server and admin
// CLI: defaults, an optional JSON overlay, then command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/peercolab/internal/cryptox"
)

// Config holds runtime settings.
//
// Fields:
//   - EndpointAddrGRPC: bind address of the gRPC health endpoint.
//   - DatabaseDSN: SQLite database file (or modernc.org/sqlite DSN).
//   - SchemaFile: line-per-statement DDL used by create-db.
//   - SecretKey: HMAC secret for session tokens (HS256).
//   - SessionTokenValidityDuration: lifetime of issued session tokens.
//   - HealthCheckInterval: how often the store is pinged for health status.
//   - ScryptN / ScryptR / ScryptP: password hashing cost.
//   - LogLevel / LogBackend: logging setup (slog or zap).
type Config struct {
	EndpointAddrGRPC             string
	DatabaseDSN                  string
	SchemaFile                   string
	SecretKey                    string
	SessionTokenValidityDuration time.Duration
	HealthCheckInterval          time.Duration
	ScryptN                      int
	ScryptR                      int
	ScryptP                      int
	LogLevel                     string
	LogBackend                   string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = "peercolab.db"
	c.SchemaFile = "schema/tables.sql"
	c.SecretKey = "secretKey"
	c.SessionTokenValidityDuration = 24 * time.Hour
	c.HealthCheckInterval = 10 * time.Second
	c.ScryptN = cryptox.DefaultParams.N
	c.ScryptR = cryptox.DefaultParams.R
	c.ScryptP = cryptox.DefaultParams.P
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// ScryptParams returns the configured password hashing cost.
func (c *Config) ScryptParams() cryptox.Params {
	return cryptox.Params{N: c.ScryptN, R: c.ScryptR, P: c.ScryptP}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be positive, got %s", c.HealthCheckInterval)
	}
	if c.SessionTokenValidityDuration <= 0 {
		return fmt.Errorf("session token validity must be positive, got %s", c.SessionTokenValidityDuration)
	}
	if c.ScryptN <= 1 || c.ScryptN&(c.ScryptN-1) != 0 {
		return fmt.Errorf("scrypt N must be a power of two > 1, got %d", c.ScryptN)
	}
	if c.ScryptR <= 0 || c.ScryptP <= 0 {
		return fmt.Errorf("scrypt r and p must be positive, got r=%d p=%d", c.ScryptR, c.ScryptP)
	}
	return nil
}
