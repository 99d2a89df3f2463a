package mcp

import (
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Extraction classifies and extracts single documents.
	Extraction driving.ExtractionService

	// Config exposes the resolved configuration. Optional.
	Config driving.ConfigService

	// Root is the input root that document resources resolve against.
	Root string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	return nil
}
