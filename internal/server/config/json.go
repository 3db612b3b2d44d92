package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/peercolab/internal/flagx"
	"github.com/dmitrijs2005/peercolab/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "30s"-style
// strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SchemaFile                   string         `json:"schema_file"`
	SecretKey                    string         `json:"secret_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	HealthCheckInterval          timex.Duration `json:"health_check_interval"`
	ScryptN                      int            `json:"scrypt_n"`
	ScryptR                      int            `json:"scrypt_r"`
	ScryptP                      int            `json:"scrypt_p"`
	LogLevel                     string         `json:"log_level"`
	LogBackend                   string         `json:"log_backend"`
}

// parseJson overlays values from the file named by -c/-config. Fields absent
// from the file keep their current value. An unreadable or malformed file
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SchemaFile, c.SchemaFile)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogBackend, c.LogBackend)

	if c.SessionTokenValidityDuration.Duration != 0 {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.HealthCheckInterval.Duration != 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	if c.ScryptN != 0 {
		config.ScryptN = c.ScryptN
	}
	if c.ScryptR != 0 {
		config.ScryptR = c.ScryptR
	}
	if c.ScryptP != 0 {
		config.ScryptP = c.ScryptP
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
