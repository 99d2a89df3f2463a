// Package mcp provides an MCP (Model Context Protocol) server adapter for pdfwords.
// It lets AI assistants classify PDFs and read their unique words.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")
