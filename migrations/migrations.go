// Package migrations embeds the schema for both supported dialects. Postgres is
// used in production; the SQLite set mirrors it for in-memory tests.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
