package driven

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// ToolProbe reports on an external program an adapter depends on.
type ToolProbe interface {
	Probe(ctx context.Context) domain.ToolStatus
}
