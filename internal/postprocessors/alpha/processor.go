// Package alpha provides the processor that keeps purely alphabetic tokens.
package alpha

import (
	"context"
	"unicode"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

// Processor drops every token containing a rune that is not a letter.
type Processor struct{}

// New creates a new alphabetic filter.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor identifier.
func (p *Processor) Name() string {
	return domain.ProcessorAlpha
}

// Process returns the alphabetic tokens in their original order.
func (p *Processor) Process(_ context.Context, tokens []string) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsAlpha(tok) {
			out = append(out, tok)
		}
	}
	return out, nil
}

// IsAlpha reports whether s is non-empty and every rune is a Unicode letter.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
