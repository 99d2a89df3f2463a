package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// --- Mock implementations of the driven ports ---

// mockSource implements driven.DocumentSource.
type mockSource struct {
	listing *driven.Listing
	err     error
}

func (m *mockSource) List(_ context.Context) (*driven.Listing, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listing == nil {
		return &driven.Listing{}, nil
	}
	return m.listing, nil
}

// mockTextLayer implements driven.TextLayerReader over canned page texts.
type mockTextLayer struct {
	pages   map[string][]string
	errs    map[string]error
	visited map[string]int
}

func newMockTextLayer() *mockTextLayer {
	return &mockTextLayer{
		pages:   make(map[string][]string),
		errs:    make(map[string]error),
		visited: make(map[string]int),
	}
}

func (m *mockTextLayer) WalkPages(ctx context.Context, path string, fn driven.PageTextFunc) error {
	if err := m.errs[path]; err != nil {
		return err
	}
	for i, text := range m.pages[path] {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.visited[path]++
		if err := fn(i+1, text); err != nil {
			return err
		}
	}
	return nil
}

// mockRasterizer implements driven.Rasterizer. Image data is "<path>#<page>"
// so the OCR mock can look up its text. Released counts images whose
// callback has returned.
type mockRasterizer struct {
	pages    map[string]int
	err      error
	released int
}

func (m *mockRasterizer) Rasterize(_ context.Context, path string, fn driven.PageImageFunc) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := m.pages[path]
	for i := 1; i <= n; i++ {
		err := fn(driven.PageImage{Page: i, Data: []byte(fmt.Sprintf("%s#%d", path, i)), Format: "png", DPI: 200})
		m.released++
		if err != nil {
			return 0, err
		}
	}
	return n, nil
}

// mockOCR implements driven.OCREngine.
type mockOCR struct {
	texts map[string]string
	errs  map[string]error
	calls int
}

func (m *mockOCR) Name() string { return "mock" }

func (m *mockOCR) Recognize(_ context.Context, img driven.PageImage) (string, error) {
	m.calls++
	key := string(img.Data)
	if err := m.errs[key]; err != nil {
		return "", err
	}
	return m.texts[key], nil
}

// mockWriter implements driven.RecordWriter.
type mockWriter struct {
	path    string
	err     error
	calls   int
	records []domain.ExtractedRecord
}

func (m *mockWriter) Write(_ context.Context, records []domain.ExtractedRecord) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.records = records
	return nil
}

func (m *mockWriter) Path() string {
	if m.path == "" {
		return "extracted_words.csv"
	}
	return m.path
}

// mockProbe implements driven.ToolProbe.
type mockProbe struct {
	status domain.ToolStatus
}

func (m *mockProbe) Probe(_ context.Context) domain.ToolStatus {
	return m.status
}

// mockTokenPipeline implements driven.TokenPipeline.
type mockTokenPipeline struct {
	err error
}

func (m *mockTokenPipeline) Process(_ context.Context, tokens []string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return tokens, nil
}
