// Package output selects the RecordWriter for the configured format.
package output

import (
	"fmt"

	"github.com/custodia-labs/pdfwords/internal/adapters/driven/output/csvwriter"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/output/xlsxwriter"
	"github.com/custodia-labs/pdfwords/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// New returns the writer for settings.Format, inferring the format from the
// path extension when it is empty.
func New(settings domain.OutputSettings) (driven.RecordWriter, error) {
	format := settings.Format
	if format == "" {
		format = domain.FormatFromPath(settings.Path)
	}

	switch format {
	case domain.OutputCSV:
		return csvwriter.New(settings.Path), nil
	case domain.OutputXLSX:
		return xlsxwriter.New(settings.Path), nil
	case domain.OutputSQLite:
		return sqlite.New(settings.Path), nil
	default:
		return nil, fmt.Errorf("%w: output format %q", domain.ErrUnsupportedType, format)
	}
}
