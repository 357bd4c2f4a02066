// Package migrations embeds the SurrealDB schema files.
package migrations

import "embed"

// FS holds every .surql file in this directory
//
//go:embed *.surql
var FS embed.FS
