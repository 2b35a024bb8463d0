package migrations

import "embed"

// Files holds the ordered, forward-only schema migrations compiled into
// the binary. Startup replays any not yet recorded in schema_migrations.
//
//go:embed *.sql
var Files embed.FS
