package driving

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// DiagnosticsService checks the external tools the pipeline needs.
type DiagnosticsService interface {
	Check(ctx context.Context) []domain.ToolStatus
}
