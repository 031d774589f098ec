// Package sqlite provides a SQLite-based RecipeStore for the reference
// recipe server.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.recipes/data/recipes.db
package sqlite
