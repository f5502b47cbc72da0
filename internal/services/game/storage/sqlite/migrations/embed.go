// Package migrations contains embedded SQL migrations for the SQLite store.
package migrations

import "embed"

//go:embed characters/*.sql
var CharactersFS embed.FS
