// Package sqlite writes the extracted records to a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. The database holds the single table extracted_words with the same
// columns as the CSV output, plus the row position.
//
// # Schema
//
// The table is created from the embedded schema.sql. The database is rebuilt
// from scratch on every run, so there are no migrations.
package sqlite
