// Package tesseract provides the OCR engine backed by Tesseract through
// gosseract. Building it requires the Tesseract and Leptonica headers
// (cgo).
package tesseract

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure Engine implements the interfaces.
var (
	_ driven.OCREngine = (*Engine)(nil)
	_ driven.ToolProbe = (*Engine)(nil)
)

// client is the subset of *gosseract.Client the engine uses.
type client interface {
	SetTessdataPrefix(prefix string) error
	SetLanguage(langs ...string) error
	SetVariable(key gosseract.SettableVariable, value string) error
	SetImageFromBytes(data []byte) error
	Text() (string, error)
	Close() error
}

// Engine recognises page images with a fresh Tesseract client per page.
type Engine struct {
	languages      []string
	tessdataPrefix string

	clientFactory func() client
	version       func() string
	available     func() ([]string, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithLanguages sets the trained-data languages, e.g. "eng", "deu".
func WithLanguages(langs ...string) Option {
	return func(e *Engine) {
		if len(langs) > 0 {
			e.languages = append([]string(nil), langs...)
		}
	}
}

// WithTessdataPrefix points Tesseract at a trained-data directory.
func WithTessdataPrefix(prefix string) Option {
	return func(e *Engine) {
		e.tessdataPrefix = prefix
	}
}

// New constructs a Tesseract-backed OCR engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		languages:     []string{"eng"},
		clientFactory: func() client { return gosseract.NewClient() },
		version:       gosseract.Version,
		available:     gosseract.GetAvailableLanguages,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine identifier.
func (e *Engine) Name() string { return "tesseract" }

// Languages returns the configured languages.
func (e *Engine) Languages() []string {
	return append([]string(nil), e.languages...)
}

// Recognize returns the text Tesseract finds in img.
func (e *Engine) Recognize(ctx context.Context, img driven.PageImage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(img.Data) == 0 {
		return "", fmt.Errorf("%w: page %d has no image data", domain.ErrExtraction, img.Page)
	}

	c := e.clientFactory()
	defer c.Close()

	if e.tessdataPrefix != "" {
		if err := c.SetTessdataPrefix(e.tessdataPrefix); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(e.languages...); err != nil {
		return "", fmt.Errorf("set languages: %w", err)
	}
	if img.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(img.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := c.SetImageFromBytes(img.Data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

// Probe reports the linked Tesseract version and whether the configured
// languages have trained data installed.
func (e *Engine) Probe(_ context.Context) domain.ToolStatus {
	status := domain.ToolStatus{
		Name:    "tesseract",
		Version: e.version(),
		Install: InstallInstructions(),
	}

	installed, err := e.available()
	if err != nil {
		status.Detail = fmt.Sprintf("cannot list trained data: %v", err)
		return status
	}

	var missing []string
	for _, lang := range e.languages {
		if !slices.Contains(installed, lang) {
			missing = append(missing, lang)
		}
	}
	if len(missing) > 0 {
		status.Detail = fmt.Sprintf("missing trained data: %s", strings.Join(missing, ", "))
		return status
	}

	status.Available = true
	status.Detail = fmt.Sprintf("languages: %s", strings.Join(e.languages, ", "))
	return status
}

// InstallInstructions returns platform-specific install instructions.
func InstallInstructions() string {
	return `Tesseract and its trained data are required to OCR scanned PDFs:
  macOS:         brew install tesseract tesseract-lang
  Ubuntu/Debian: sudo apt install tesseract-ocr libtesseract-dev
  Fedora/RHEL:   sudo dnf install tesseract tesseract-devel
Set ocr.tessdata_prefix if the trained data lives outside the default path.`
}
