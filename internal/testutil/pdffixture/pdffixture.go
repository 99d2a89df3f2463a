// Package pdffixture builds small, well-formed PDF files for tests.
//
// Each page is either a list of text lines set in Helvetica or, when the
// list is empty, a filled rectangle with no text layer (a stand-in for a
// scanned page).
package pdffixture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Build returns the bytes of a PDF with one page per argument.
func Build(pages ...[]string) []byte {
	var objects []string

	// 1: catalog, 2: page tree, 3: font; then a page and a content stream per page.
	objects = append(objects, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objects = append(objects, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, lines := range pages {
		contentID := 5 + 2*i
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentID))
		stream := contentStream(lines)
		objects = append(objects, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// Write builds a PDF and writes it to path, creating parent directories.
func Write(t testing.TB, path string, pages ...[]string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, Build(pages...), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// Text is shorthand for a page with the given lines.
func Text(lines ...string) []string {
	return lines
}

// Blank is a page without a text layer.
func Blank() []string {
	return nil
}

func contentStream(lines []string) string {
	if len(lines) == 0 {
		return "q 0.5 g 72 72 468 648 re f Q"
	}

	var b strings.Builder
	b.WriteString("BT /F1 12 Tf 14 TL 72 720 Td")
	for i, line := range lines {
		if i > 0 {
			b.WriteString(" T*")
		}
		fmt.Fprintf(&b, " (%s) Tj", escape(line))
	}
	b.WriteString(" ET")
	return b.String()
}

// escape makes s safe inside a PDF literal string. Runes outside ASCII are
// replaced because the fixture font uses a single-byte encoding.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r > 0x7e || r < 0x20:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
