package services

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Classifier decides whether a PDF carries a usable text layer.
type Classifier struct {
	reader driven.TextLayerReader
}

// NewClassifier creates a classifier over the given text-layer reader.
func NewClassifier(reader driven.TextLayerReader) *Classifier {
	return &Classifier{reader: reader}
}

// Classify scans pages in order and stops at the first page whose text is
// non-empty after trimming whitespace. Documents with no such page are scanned.
func (c *Classifier) Classify(ctx context.Context, path string) (domain.DocumentKind, error) {
	digital := false
	err := c.reader.WalkPages(ctx, path, func(_ int, text string) error {
		if strings.TrimSpace(text) != "" {
			digital = true
			return driven.StopWalk
		}
		return nil
	})
	if err != nil && !errors.Is(err, driven.StopWalk) {
		return "", err
	}
	return domain.KindFromDigital(digital), nil
}
