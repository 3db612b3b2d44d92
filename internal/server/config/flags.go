package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/peercolab/internal/flagx"
)

var serverFlags = []string{"-a", "-d", "-f", "-s", "-t", "-i", "-n", "-l", "-b"}

// ValueFlags lists every flag consumed, together with its value, by the
// config layers. Commands use it to find their own arguments.
func ValueFlags() []string {
	return append(append([]string{}, serverFlags...), "-c", "-config")
}

// parseFlags populates Config from command-line flags.
//
// Supported flags:
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     SQLite database DSN
//	-f string     schema definition file
//	-s string     session token secret
//	-t int        session token validity, minutes
//	-i duration   health check interval
//	-n int        scrypt N
//	-l string     log level
//	-b string     log backend (slog|zap)
//
// Only these flags are read from os.Args; everything else (subcommands,
// -c/-config) is left to other parsers. Invalid values panic.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC health endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SchemaFile, "f", config.SchemaFile, "schema definition file")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "session token secret")

	sessionTokenValidity := fs.Int("t", int(config.SessionTokenValidityDuration.Minutes()), "session_token_validity_duration (in minutes)")

	fs.DurationVar(&config.HealthCheckInterval, "i", config.HealthCheckInterval, "health check interval")
	fs.IntVar(&config.ScryptN, "n", config.ScryptN, "scrypt cost parameter N")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend (slog|zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is in whole minutes; keep a finer JSON value unless the flag is given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionTokenValidityDuration = time.Duration(*sessionTokenValidity) * time.Minute
		}
	})
}
