package driving

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// ProgressFunc receives progress events during a run. It is called from the
// goroutine running the batch.
type ProgressFunc func(domain.Progress)

// ExtractionService runs the word extraction batch.
type ExtractionService interface {
	// Run enumerates, extracts and serialises every document, reporting
	// progress to fn when it is not nil.
	// Per-document failures are recorded in the report; the returned error
	// is reserved for failures that stop the whole run.
	Run(ctx context.Context, fn ProgressFunc) (*domain.RunReport, error)

	// ExtractFile runs classify, extract and aggregate on a single PDF.
	// The category is the name of the file's parent folder.
	ExtractFile(ctx context.Context, path string) (domain.ExtractedRecord, error)

	// Classify reports whether the PDF at path is digital or scanned.
	Classify(ctx context.Context, path string) (domain.DocumentKind, error)
}
