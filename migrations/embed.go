// Package migrations embeds the SQL schema, one directory per driver.
package migrations

import "embed"

//go:embed mysql/*.sql postgres/*.sql
var FS embed.FS
