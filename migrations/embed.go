// Package migrations embeds the PostgreSQL schema applied at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
