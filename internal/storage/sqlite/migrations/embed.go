package migrations

import "embed"

// FS contains embedded SQLite migrations for catalog exports.
//
//go:embed *.sql
var FS embed.FS
