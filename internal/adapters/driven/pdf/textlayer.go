package pdf

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure TextLayer implements the interface.
var _ driven.TextLayerReader = (*TextLayer)(nil)

// TextLayer reads the native text of each page.
type TextLayer struct{}

// NewTextLayer creates a new text-layer reader.
func NewTextLayer() *TextLayer {
	return &TextLayer{}
}

// WalkPages opens path and calls fn with the plain text of each page in
// order. Pages without content yield empty text. Open and parse failures
// wrap domain.ErrDocumentOpen; an error returned by fn is returned as is.
func (t *TextLayer) WalkPages(ctx context.Context, path string, fn driven.PageTextFunc) error {
	f, r, err := open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := numPages(r)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDocumentOpen, path, err)
	}

	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		text, err := pageText(r, i)
		if err != nil {
			return fmt.Errorf("%w: %s: page %d: %v", domain.ErrDocumentOpen, path, i, err)
		}
		if err := fn(i, text); err != nil {
			return err
		}
	}
	return nil
}

// PageCount returns the number of pages declared by the page tree.
func (t *TextLayer) PageCount(path string) (int, error) {
	f, r, err := open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := numPages(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDocumentOpen, path, err)
	}
	return n, nil
}

// open wraps pdf.Open, which panics on some malformed trailers.
func open(path string) (f *os.File, r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if f != nil {
				f.Close()
			}
			f, r = nil, nil
			err = fmt.Errorf("%w: %s: %v", domain.ErrDocumentOpen, path, rec)
		}
	}()

	f, r, err = pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrDocumentOpen, path, err)
	}
	return f, r, nil
}

func numPages(r *pdf.Reader) (n int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("read page tree: %v", rec)
		}
	}()
	return r.NumPage(), nil
}

func pageText(r *pdf.Reader, i int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	page := r.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	// A nil font map makes the reader load the page's own fonts.
	return page.GetPlainText(nil)
}
