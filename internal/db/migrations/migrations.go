// Package migrations embeds the SQL schema files for the stats store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
