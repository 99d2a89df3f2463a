// Package minlength provides a processor that drops short tokens.
package minlength

import (
	"context"
	"unicode/utf8"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// Processor drops tokens shorter than a minimum rune count.
type Processor struct {
	min int
}

// New creates a filter keeping tokens of at least n runes.
func New(n int) *Processor {
	return &Processor{min: n}
}

// Name returns the processor identifier.
func (p *Processor) Name() string {
	return domain.ProcessorMinLength
}

// MinLength returns the configured minimum.
func (p *Processor) MinLength() int {
	return p.min
}

// Process returns the tokens that are long enough, in order.
func (p *Processor) Process(_ context.Context, tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) >= p.min {
			out = append(out, tok)
		}
	}
	return out, nil
}
