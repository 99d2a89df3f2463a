package driven

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// Listing is the result of enumerating the input folders.
type Listing struct {
	// Documents are the PDFs found, grouped by category in configured order.
	Documents []domain.Document

	// MissingCategories are configured categories whose folder does not exist.
	MissingCategories []string
}

// DocumentSource enumerates the documents of a run.
type DocumentSource interface {
	// List returns every matching document. A missing category folder is
	// reported in Listing.MissingCategories and is not an error.
	List(ctx context.Context) (*Listing, error)
}
