// Package migrations embute os scripts SQL versionados do schema (goose).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
