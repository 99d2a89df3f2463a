package driven

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// RecordWriter serialises records to a flat table with domain.OutputHeader.
type RecordWriter interface {
	// Write replaces the output with a header row and one row per record.
	Write(ctx context.Context, records []domain.ExtractedRecord) error

	// Path returns the output location.
	Path() string
}
