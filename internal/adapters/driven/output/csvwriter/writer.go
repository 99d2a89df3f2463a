// Package csvwriter serialises extracted records as CSV.
package csvwriter

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.RecordWriter = (*Writer)(nil)

// Writer writes records to a CSV file with a header row.
// The file is written to a temporary sibling and renamed into place, so an
// interrupted run never leaves a truncated table behind.
type Writer struct {
	path string
}

// New creates a CSV writer for path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Write replaces the output file with the header and one row per record.
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
	defer os.Remove(tmp.Name())

	cw := csv.NewWriter(tmp)
	if err := cw.Write(domain.OutputHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", rec.FileName, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	return os.Rename(tmp.Name(), w.path)
}
