// Package dedupe provides the processor that removes repeated tokens.
package dedupe

import (
	"context"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// Processor keeps the first occurrence of each token.
type Processor struct{}

// New creates a new dedupe processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor identifier.
func (p *Processor) Name() string {
	return domain.ProcessorDedupe
}

// Process returns tokens with later repeats removed, preserving first-seen order.
func (p *Processor) Process(_ context.Context, tokens []string) ([]string, error) {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out, nil
}
