// Package migrations embeds the goose SQL migrations for the plantcare schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
