package postgres

import "embed"

// MigrationsDir is the directory inside Migrations that holds the goose files.
const MigrationsDir = "migrations"

// MigrationTableName is the goose version table used by this service.
const MigrationTableName = "schema_migrations"

// Migrations holds the SQL migrations applied by "server -migrate".
//
//go:embed migrations/*.sql
var Migrations embed.FS
