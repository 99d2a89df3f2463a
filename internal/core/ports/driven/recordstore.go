package driven

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// RecordStore holds extracted records in insertion order for one run.
type RecordStore interface {
	// Append adds a record after all existing ones.
	Append(ctx context.Context, rec domain.ExtractedRecord) error

	// List returns all records in insertion order.
	List(ctx context.Context) ([]domain.ExtractedRecord, error)

	// Len returns the number of records held.
	Len() int

	// Clear removes all records.
	Clear()
}
