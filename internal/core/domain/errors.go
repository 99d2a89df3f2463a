package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown output format or processor.
	ErrUnsupportedType = errors.New("unsupported type")

	// Extraction Errors.

	// ErrDocumentOpen indicates a document could not be opened or parsed
	// (corrupt file, unsupported format).
	ErrDocumentOpen = errors.New("document cannot be opened")

	// ErrExtraction indicates rasterisation or OCR failed for a page.
	ErrExtraction = errors.New("extraction failed")

	// Environment Errors.

	// ErrToolNotFound indicates a required external program is missing.
	ErrToolNotFound = errors.New("required tool not found")
)
