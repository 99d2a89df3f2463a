package driven

import "context"

// PageImage is one rendered page.
type PageImage struct {
	// Page is the 1-based page number.
	Page int

	// Data is the encoded image. It is only valid during the PageImageFunc call.
	Data []byte

	// Format is the image content type (e.g., "image/png").
	Format string

	// DPI is the resolution the page was rendered at.
	DPI int
}

// PageImageFunc receives one rendered page.
type PageImageFunc func(img PageImage) error

// Rasterizer renders PDF pages to images.
type Rasterizer interface {
	// Rasterize renders every page of the document at path in page order
	// and calls fn with each image. Each image is released once fn returns,
	// including when fn fails. Returns the number of pages in the document.
	Rasterize(ctx context.Context, path string, fn PageImageFunc) (int, error)
}
