package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Default settings values.
const (
	DefaultRoot         = "pdf_files"
	DefaultOutputPath   = "extracted_words.csv"
	DefaultDPI          = 200
	DefaultPDFToPPMPath = "pdftoppm"

	minDPI = 36
	maxDPI = 1200
)

// Token processor names.
const (
	ProcessorAlpha     = "alpha"
	ProcessorDedupe    = "dedupe"
	ProcessorMinLength = "minlength"
)

// DefaultCategories returns the category folders scanned when none are configured.
func DefaultCategories() []string {
	return []string{"Annual Assurance Reports", "Service Inquiries"}
}

// DefaultProcessors returns the mandatory token processor chain.
func DefaultProcessors() []string {
	return []string{ProcessorAlpha, ProcessorDedupe}
}

// OutputFormat identifies the tabular output encoding.
type OutputFormat string

// Available output formats.
const (
	// OutputCSV is comma-separated values.
	OutputCSV OutputFormat = "csv"

	// OutputXLSX is an Excel workbook with a single sheet.
	OutputXLSX OutputFormat = "xlsx"

	// OutputSQLite is a SQLite database with a single table.
	OutputSQLite OutputFormat = "sqlite"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputCSV, OutputXLSX, OutputSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// FormatFromPath infers the output format from a file extension.
// Unknown extensions are treated as CSV.
func FormatFromPath(path string) OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return OutputXLSX
	case ".db", ".sqlite", ".sqlite3":
		return OutputSQLite
	default:
		return OutputCSV
	}
}

// InputSettings controls document enumeration.
type InputSettings struct {
	// Root is the folder containing the category subfolders.
	Root string

	// Categories are the subfolder names scanned, in order.
	Categories []string

	// IgnoreCaseExt also accepts ".PDF" and other case variants.
	IgnoreCaseExt bool
}

// OutputSettings controls serialisation of the records.
type OutputSettings struct {
	Path   string
	Format OutputFormat
}

// OCRSettings controls the scanned-document path.
type OCRSettings struct {
	// Languages are Tesseract trained-data names (e.g. "eng").
	Languages []string

	// TessdataPrefix points at the trained-data directory. Empty uses the
	// Tesseract default.
	TessdataPrefix string

	// DPI is the page rasterisation resolution.
	DPI int
}

// RasterSettings controls the page rasteriser.
type RasterSettings struct {
	// PDFToPPMPath is the pdftoppm executable name or path.
	PDFToPPMPath string
}

// TokenSettings controls the token post-processor chain.
type TokenSettings struct {
	Processors []string
	MinLength  int
}

// Settings is the resolved configuration of one run.
type Settings struct {
	Input  InputSettings
	Output OutputSettings
	OCR    OCRSettings
	Raster RasterSettings
	Tokens TokenSettings

	// FailFast aborts the batch on the first document failure.
	FailFast bool

	// Strict makes the run fail when any document failed.
	Strict bool
}

// DefaultSettings returns settings that reproduce the standard layout.
func DefaultSettings() Settings {
	return Settings{
		Input: InputSettings{
			Root:       DefaultRoot,
			Categories: DefaultCategories(),
		},
		Output: OutputSettings{
			Path:   DefaultOutputPath,
			Format: OutputCSV,
		},
		OCR: OCRSettings{
			Languages: []string{"eng"},
			DPI:       DefaultDPI,
		},
		Raster: RasterSettings{
			PDFToPPMPath: DefaultPDFToPPMPath,
		},
		Tokens: TokenSettings{
			Processors: DefaultProcessors(),
		},
	}
}

// Validate checks the settings for values the pipeline cannot run with.
//
//nolint:gocyclo // Flat list of independent checks
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Input.Root) == "" {
		return fmt.Errorf("%w: input root is empty", ErrInvalidInput)
	}
	if len(s.Input.Categories) == 0 {
		return fmt.Errorf("%w: no categories configured", ErrInvalidInput)
	}
	for _, c := range s.Input.Categories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: empty category name", ErrInvalidInput)
		}
		if c == "." || c == ".." || strings.ContainsAny(c, `/\`) {
			return fmt.Errorf("%w: category %q must be a plain folder name", ErrInvalidInput, c)
		}
	}
	if strings.TrimSpace(s.Output.Path) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidInput)
	}
	if !s.Output.Format.IsValid() {
		return fmt.Errorf("%w: output format %q", ErrUnsupportedType, s.Output.Format)
	}
	if len(s.OCR.Languages) == 0 {
		return fmt.Errorf("%w: no OCR languages configured", ErrInvalidInput)
	}
	if s.OCR.DPI < minDPI || s.OCR.DPI > maxDPI {
		return fmt.Errorf("%w: dpi %d outside %d-%d", ErrInvalidInput, s.OCR.DPI, minDPI, maxDPI)
	}
	if strings.TrimSpace(s.Raster.PDFToPPMPath) == "" {
		return fmt.Errorf("%w: pdftoppm path is empty", ErrInvalidInput)
	}
	if !slices.Contains(s.Tokens.Processors, ProcessorAlpha) || !slices.Contains(s.Tokens.Processors, ProcessorDedupe) {
		return fmt.Errorf("%w: token processors must include %q and %q", ErrInvalidInput, ProcessorAlpha, ProcessorDedupe)
	}
	if s.Tokens.MinLength < 0 {
		return fmt.Errorf("%w: min length %d", ErrInvalidInput, s.Tokens.MinLength)
	}
	if slices.Contains(s.Tokens.Processors, ProcessorMinLength) && s.Tokens.MinLength == 0 {
		return fmt.Errorf("%w: %q processor needs a min length", ErrInvalidInput, ProcessorMinLength)
	}
	return nil
}
