package driven

import (
	"context"
	"errors"
)

// StopWalk can be returned from a PageTextFunc to end a walk early.
// WalkPages returns nil in that case.
var StopWalk = errors.New("stop walk")

// PageTextFunc receives the raw text of one page. Pages are numbered from 1.
type PageTextFunc func(page int, text string) error

// TextLayerReader reads the native text layer of a PDF.
type TextLayerReader interface {
	// WalkPages opens the document at path and calls fn for every page in
	// order. The document is closed before WalkPages returns.
	// Returns an error wrapping domain.ErrDocumentOpen if the document
	// cannot be opened or a page cannot be read.
	WalkPages(ctx context.Context, path string, fn PageTextFunc) error
}
