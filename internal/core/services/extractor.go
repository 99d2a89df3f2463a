package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

// Extraction is the normalised text of a whole document.
type Extraction struct {
	Kind  domain.DocumentKind
	Text  string
	Pages int
}

// Extractor produces normalised document text from either the text layer
// or OCR over rendered pages.
type Extractor struct {
	reader     driven.TextLayerReader
	rasterizer driven.Rasterizer
	ocr        driven.OCREngine
}

// NewExtractor creates an extractor. The rasterizer and OCR engine are only
// used for scanned documents.
func NewExtractor(reader driven.TextLayerReader, rasterizer driven.Rasterizer, ocr driven.OCREngine) *Extractor {
	return &Extractor{
		reader:     reader,
		rasterizer: rasterizer,
		ocr:        ocr,
	}
}

// Extract dispatches on kind and returns the cleaned page texts joined by
// single spaces in page order.
func (e *Extractor) Extract(ctx context.Context, path string, kind domain.DocumentKind) (*Extraction, error) {
	switch kind {
	case domain.KindDigital:
		return e.extractDigital(ctx, path)
	case domain.KindScanned:
		return e.extractScanned(ctx, path)
	default:
		return nil, fmt.Errorf("%w: document kind %q", domain.ErrInvalidInput, kind)
	}
}

func (e *Extractor) extractDigital(ctx context.Context, path string) (*Extraction, error) {
	var pages []string
	err := e.reader.WalkPages(ctx, path, func(_ int, text string) error {
		pages = append(pages, CleanupText(text))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Extraction{
		Kind:  domain.KindDigital,
		Text:  strings.Join(pages, " "),
		Pages: len(pages),
	}, nil
}

func (e *Extractor) extractScanned(ctx context.Context, path string) (*Extraction, error) {
	if e.rasterizer == nil || e.ocr == nil {
		return nil, fmt.Errorf("%w: no OCR pipeline configured", domain.ErrExtraction)
	}

	var pages []string
	count, err := e.rasterizer.Rasterize(ctx, path, func(img driven.PageImage) error {
		text, err := e.ocr.Recognize(ctx, img)
		if err != nil {
			return fmt.Errorf("page %d: %w", img.Page, err)
		}
		logger.Debug("  ocr page %d: %d chars", img.Page, len(text))
		pages = append(pages, CleanupText(text))
		return nil
	})
	if err != nil {
		if isContextErr(err) || errors.Is(err, domain.ErrExtraction) ||
			errors.Is(err, domain.ErrDocumentOpen) || errors.Is(err, domain.ErrToolNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrExtraction, err)
	}

	return &Extraction{
		Kind:  domain.KindScanned,
		Text:  strings.Join(pages, " "),
		Pages: count,
	}, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
