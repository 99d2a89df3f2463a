package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/logger"
)

// Ensure Rasterizer implements the interfaces.
var (
	_ driven.Rasterizer = (*Rasterizer)(nil)
	_ driven.ToolProbe  = (*Rasterizer)(nil)
)

// ErrPDFToolNotFound is returned when pdftoppm is not installed.
var ErrPDFToolNotFound = fmt.Errorf("%w: pdftoppm not found in PATH", domain.ErrToolNotFound)

// PageCounter returns the number of pages of a PDF.
type PageCounter func(path string) (int, error)

// Rasterizer renders pages to PNG one at a time with pdftoppm.
// Each image lives in a per-document temporary directory and is removed as
// soon as the callback for its page returns.
type Rasterizer struct {
	runner   CommandRunner
	binary   string
	dpi      int
	tempDir  string
	count    PageCounter
	lookPath func(string) (string, error)
}

// RasterOption configures a Rasterizer.
type RasterOption func(*Rasterizer)

// WithBinary sets the pdftoppm executable name or path.
func WithBinary(path string) RasterOption {
	return func(r *Rasterizer) {
		if path != "" {
			r.binary = path
		}
	}
}

// WithDPI sets the render resolution.
func WithDPI(dpi int) RasterOption {
	return func(r *Rasterizer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithTempDir sets the parent directory for page images.
func WithTempDir(dir string) RasterOption {
	return func(r *Rasterizer) {
		r.tempDir = dir
	}
}

// WithPageCounter replaces the page counter.
func WithPageCounter(count PageCounter) RasterOption {
	return func(r *Rasterizer) {
		if count != nil {
			r.count = count
		}
	}
}

// NewRasterizer creates a rasteriser using the real pdftoppm.
func NewRasterizer(opts ...RasterOption) *Rasterizer {
	return NewRasterizerWithRunner(ExecRunner{}, opts...)
}

// NewRasterizerWithRunner creates a rasteriser with a custom command runner.
func NewRasterizerWithRunner(runner CommandRunner, opts ...RasterOption) *Rasterizer {
	r := &Rasterizer{
		runner:   runner,
		binary:   domain.DefaultPDFToPPMPath,
		dpi:      domain.DefaultDPI,
		count:    CountPages,
		lookPath: exec.LookPath,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rasterize renders every page of path in order and passes each image to fn.
// It returns the page count.
func (r *Rasterizer) Rasterize(ctx context.Context, path string, fn driven.PageImageFunc) (int, error) {
	if _, err := r.lookPath(r.binary); err != nil {
		return 0, ErrPDFToolNotFound
	}

	n, err := r.count(path)
	if err != nil {
		return 0, err
	}

	dir, err := os.MkdirTemp(r.tempDir, "pdfwords-raster-*")
	if err != nil {
		return 0, fmt.Errorf("create raster dir: %w", err)
	}
	defer os.RemoveAll(dir)

	for page := 1; page <= n; page++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := r.renderPage(ctx, path, dir, page, fn); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// renderPage renders a single page and removes the image once fn returns.
func (r *Rasterizer) renderPage(ctx context.Context, path, dir string, page int, fn driven.PageImageFunc) error {
	prefix := filepath.Join(dir, fmt.Sprintf("page-%d", page))
	out := prefix + ".png"
	defer os.Remove(out)

	p := strconv.Itoa(page)
	output, err := r.runner.Run(ctx, r.binary,
		"-png", "-r", strconv.Itoa(r.dpi), "-f", p, "-l", p, "-singlefile", path, prefix)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: pdftoppm page %d: %v: %s", domain.ErrExtraction, page, err, strings.TrimSpace(string(output)))
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return fmt.Errorf("%w: read page %d image: %w", domain.ErrExtraction, page, err)
	}
	logger.Debug("  rendered page %d (%d bytes)", page, len(data))

	return fn(driven.PageImage{
		Page:   page,
		Data:   data,
		Format: "png",
		DPI:    r.dpi,
	})
}

// CountPages returns the page count of path using pdfcpu, falling back to
// the text-layer reader for files pdfcpu rejects.
func CountPages(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err == nil {
		return n, nil
	}
	logger.Debug("pdfcpu page count failed for %s: %v", path, err)

	n, fallbackErr := NewTextLayer().PageCount(path)
	if fallbackErr != nil {
		return 0, errors.Join(fallbackErr, err)
	}
	return n, nil
}

// Probe reports whether pdftoppm is installed and its version.
func (r *Rasterizer) Probe(ctx context.Context) domain.ToolStatus {
	status := domain.ToolStatus{
		Name:    "pdftoppm",
		Install: InstallInstructions(),
	}

	resolved, err := r.lookPath(r.binary)
	if err != nil {
		status.Detail = fmt.Sprintf("%s not found in PATH", r.binary)
		return status
	}
	status.Available = true
	status.Detail = resolved

	// pdftoppm prints its version banner on stderr and exits 0 or 99
	// depending on the poppler release, so the error is ignored.
	output, _ := r.runner.Run(ctx, r.binary, "-v")
	status.Version = parseVersion(string(output))
	return status
}

// CheckAvailable verifies that pdftoppm is in PATH.
func CheckAvailable() error {
	if _, err := exec.LookPath(domain.DefaultPDFToPPMPath); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns platform-specific install instructions.
func InstallInstructions() string {
	return `pdftoppm is required to OCR scanned PDFs. Install poppler-utils:
  macOS:         brew install poppler
  Ubuntu/Debian: sudo apt install poppler-utils
  Fedora/RHEL:   sudo dnf install poppler-utils`
}

// parseVersion extracts "22.02.0" from "pdftoppm version 22.02.0".
func parseVersion(banner string) string {
	for _, line := range strings.Split(banner, "\n") {
		fields := strings.Fields(line)
		for i, f := range fields {
			if f == "version" && i+1 < len(fields) {
				return fields[i+1]
			}
		}
	}
	return ""
}
