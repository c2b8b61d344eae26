// Package migrations embeds the goose SQL migrations so the server binary
// can apply them without a separate migration tool on the host.
package migrations

import "embed"

// FS holds the SQL migration files.
//
//go:embed *.sql
var FS embed.FS
