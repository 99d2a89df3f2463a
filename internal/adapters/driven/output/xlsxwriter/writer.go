// Package xlsxwriter serialises extracted records as an Excel workbook.
package xlsxwriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.RecordWriter = (*Writer)(nil)

// SheetName is the name of the single worksheet.
const SheetName = "Extracted Words"

// Writer writes records to a single-sheet workbook.
// Cells longer than excelize.TotalCellChars are truncated by the library.
type Writer struct {
	path string
}

// New creates an XLSX writer for path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Write replaces the workbook with the header row and one row per record.
func (w *Writer) Write(ctx context.Context, records []domain.ExtractedRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("Error closing workbook: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := append([]string(nil), domain.OutputHeader...)
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		row := rec.Row()
		if n := len([]rune(row[2])); n > excelize.TotalCellChars {
			logger.Warn("%s: %d characters of words exceed the cell limit and are truncated", rec.FileName, n)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write %s: %w", rec.FileName, err)
		}
	}

	return w.save(f)
}

// save writes the workbook to a temporary sibling and renames it over the
// target.
func (w *Writer) save(f *excelize.File) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("save workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	return os.Rename(tmp.Name(), w.path)
}
