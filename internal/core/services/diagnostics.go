package services

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driving"
)

// Ensure DiagnosticsService implements the interface.
var _ driving.DiagnosticsService = (*DiagnosticsService)(nil)

// DiagnosticsService reports on the external tools used for scanned documents.
type DiagnosticsService struct {
	probes []driven.ToolProbe
}

// NewDiagnosticsService creates a diagnostics service over the given probes.
func NewDiagnosticsService(probes ...driven.ToolProbe) *DiagnosticsService {
	return &DiagnosticsService{probes: probes}
}

// Check runs every probe in order.
func (s *DiagnosticsService) Check(ctx context.Context) []domain.ToolStatus {
	statuses := make([]domain.ToolStatus, 0, len(s.probes))
	for _, p := range s.probes {
		statuses = append(statuses, p.Probe(ctx))
	}
	return statuses
}
