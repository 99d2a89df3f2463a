package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// TableName is the table the records are written to.
const TableName = "extracted_words"

//go:embed schema.sql
var schema string

// Ensure Writer implements the interface.
var _ driven.RecordWriter = (*Writer)(nil)

// Writer writes records to a SQLite database file.
type Writer struct {
	path string
}

// New creates a SQLite writer for path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the database file path.
func (w *Writer) Path() string {
	return w.path
}

// Write replaces the database with one row per record, in order.
// The database is built next to path and renamed into place.
func (w *Writer) Write(ctx context.Context, records []domain.ExtractedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	db, err := sql.Open("sqlite", tmpPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	if err := insert(ctx, db, records); err != nil {
		db.Close()
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	return os.Rename(tmpPath, w.path)
}

func insert(ctx context.Context, db *sql.DB, records []domain.ExtractedRecord) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO "+TableName+" (position, pdf_file, folder, extracted_words) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, i+1, rec.FileName, rec.Category, rec.JoinedWords()); err != nil {
			return fmt.Errorf("insert %s: %w", rec.FileName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
