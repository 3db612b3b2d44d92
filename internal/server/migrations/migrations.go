// Package migrations embeds the versioned goose migrations for the access
// store schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
