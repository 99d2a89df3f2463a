package domain

import "path/filepath"

// Document represents a single input PDF.
// The digital-or-scanned flag is derived by classification and never stored.
type Document struct {
	// Path is the location of the file on disk.
	Path string

	// Category is the label of the subfolder the file was found in.
	Category string
}

// NewDocument creates a document for the file at path under category.
func NewDocument(path, category string) Document {
	return Document{Path: path, Category: category}
}

// FileName returns the base name of the document file.
func (d Document) FileName() string {
	return filepath.Base(d.Path)
}

// DocumentKind is the classification outcome for a document.
type DocumentKind string

// Available document kinds.
const (
	// KindDigital is a PDF whose pages carry an extractable text layer.
	KindDigital DocumentKind = "digital"

	// KindScanned is a PDF whose pages are raster images requiring OCR.
	KindScanned DocumentKind = "scanned"
)

// KindFromDigital maps the classifier's boolean verdict to a DocumentKind.
func KindFromDigital(digital bool) DocumentKind {
	if digital {
		return KindDigital
	}
	return KindScanned
}

// IsDigital returns true for documents with a text layer.
func (k DocumentKind) IsDigital() bool {
	return k == KindDigital
}

// IsValid returns true if the kind is recognised.
func (k DocumentKind) IsValid() bool {
	return k == KindDigital || k == KindScanned
}

// String returns the string representation.
func (k DocumentKind) String() string {
	return string(k)
}
