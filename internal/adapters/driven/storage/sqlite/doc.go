// Package sqlite keeps saved charts in ~/.astrolabe/data/history.db using
// modernc.org/sqlite, so the binary builds without cgo.
//
// The schema lives in numbered migrations/NNN_name.up.sql and .down.sql
// scripts embedded at build time. NewStore applies whatever is missing and
// records each version in schema_migrations. The database runs in WAL mode
// with foreign keys on, and placements are removed with their chart.
package sqlite
