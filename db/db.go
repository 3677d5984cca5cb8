// Package db embeds the SQL migrations applied by the migrate command.
package db

import "embed"

// MigrationsDir is the directory of the goose migrations inside Migrations.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
