package domain

import "strings"

// ExtractedRecord holds the unique words extracted from one document.
// Records are created once, after extraction completes, and never modified.
type ExtractedRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// FileName is the base name of the source PDF.
	FileName string

	// Category is the label of the folder the PDF was found in.
	Category string

	// Kind records which extraction path produced the words.
	Kind DocumentKind

	// Pages is the number of pages read from the document.
	Pages int

	words []string
}

// NewExtractedRecord builds a record for doc. The words slice is copied.
func NewExtractedRecord(id string, doc Document, kind DocumentKind, pages int, words []string) ExtractedRecord {
	return ExtractedRecord{
		ID:       id,
		FileName: doc.FileName(),
		Category: doc.Category,
		Kind:     kind,
		Pages:    pages,
		words:    append([]string(nil), words...),
	}
}

// Words returns a copy of the ordered unique words.
func (r ExtractedRecord) Words() []string {
	return append([]string(nil), r.words...)
}

// WordCount returns the number of unique words.
func (r ExtractedRecord) WordCount() int {
	return len(r.words)
}

// JoinedWords returns the words joined by single spaces, as written to output.
func (r ExtractedRecord) JoinedWords() string {
	return strings.Join(r.words, " ")
}

// OutputHeader is the header row of the tabular output.
var OutputHeader = []string{"PDF File", "Folder", "Extracted Words"}

// Row returns the record as an output row matching OutputHeader.
func (r ExtractedRecord) Row() []string {
	return []string{r.FileName, r.Category, r.JoinedWords()}
}
