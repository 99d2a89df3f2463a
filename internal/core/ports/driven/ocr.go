package driven

import "context"

// OCREngine recognises text in page images.
type OCREngine interface {
	// Name returns the engine name for logging.
	Name() string

	// Recognize returns the plain text found in img.
	Recognize(ctx context.Context, img PageImage) (string, error)
}
