// Package domain defines the core business entities for pdfwords.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A PDF file found under a category folder
//   - ExtractedRecord: The unique words extracted from one Document
//   - DocumentResult: The per-document outcome of a run
//   - RunReport: The outcome of a whole batch run
//   - Settings: The resolved run configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
