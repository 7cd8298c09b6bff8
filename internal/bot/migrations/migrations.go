// Package migrations embeds the goose SQL migrations for both supported
// database dialects. The tables must exist before the first store call; the
// repository manager runs these on startup.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
