package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
	"github.com/custodia-labs/pdfwords/internal/testutil/pdffixture"
)

func collectPages(t *testing.T, path string) []string {
	t.Helper()
	var pages []string
	err := NewTextLayer().WalkPages(context.Background(), path, func(_ int, text string) error {
		pages = append(pages, text)
		return nil
	})
	require.NoError(t, err)
	return pages
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.TextLayerReader = (*TextLayer)(nil)
	var _ driven.Rasterizer = (*Rasterizer)(nil)
	var _ driven.ToolProbe = (*Rasterizer)(nil)
}

func TestTextLayer_WalkPages(t *testing.T) {
	path := pdffixture.Write(t, filepath.Join(t.TempDir(), "doc.pdf"),
		pdffixture.Text("Hello, World.", "Hello again."),
		pdffixture.Text("Second page"),
	)

	pages := collectPages(t, path)

	require.Len(t, pages, 2)
	assert.Contains(t, pages[0], "Hello, World.")
	assert.Contains(t, pages[0], "Hello again.")
	assert.Contains(t, pages[1], "Second page")
}

func TestTextLayer_BlankPages(t *testing.T) {
	path := pdffixture.Write(t, filepath.Join(t.TempDir(), "scan.pdf"), pdffixture.Blank(), pdffixture.Blank())

	pages := collectPages(t, path)

	require.Len(t, pages, 2)
	for _, p := range pages {
		assert.Empty(t, strings.TrimSpace(p))
	}
}

func TestTextLayer_PageNumbers(t *testing.T) {
	path := pdffixture.Write(t, filepath.Join(t.TempDir(), "doc.pdf"),
		pdffixture.Text("a"), pdffixture.Text("b"), pdffixture.Text("c"))

	var numbers []int
	err := NewTextLayer().WalkPages(context.Background(), path, func(page int, _ string) error {
		numbers = append(numbers, page)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestTextLayer_StopWalk(t *testing.T) {
	path := pdffixture.Write(t, filepath.Join(t.TempDir(), "doc.pdf"),
		pdffixture.Text("a"), pdffixture.Text("b"))

	calls := 0
	err := NewTextLayer().WalkPages(context.Background(), path, func(_ int, _ string) error {
		calls++
		return driven.StopWalk
	})

	assert.True(t, errors.Is(err, driven.StopWalk))
	assert.Equal(t, 1, calls)
}

func TestTextLayer_OpenErrors(t *testing.T) {
	dir := t.TempDir()
	notPDF := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(notPDF, []byte("this is plain text, not a PDF document at all"), 0644))

	truncated := filepath.Join(dir, "truncated.pdf")
	full := pdffixture.Build(pdffixture.Text("hello"))
	require.NoError(t, os.WriteFile(truncated, full[:len(full)/2], 0644))

	tiny := filepath.Join(dir, "tiny.pdf")
	require.NoError(t, os.WriteFile(tiny, []byte("%PDF-1.4\n"), 0644))

	tests := []string{
		filepath.Join(dir, "missing.pdf"),
		notPDF,
		truncated,
		tiny,
	}

	for _, path := range tests {
		t.Run(filepath.Base(path), func(t *testing.T) {
			err := NewTextLayer().WalkPages(context.Background(), path, func(int, string) error {
				return nil
			})
			assert.ErrorIs(t, err, domain.ErrDocumentOpen)
		})
	}
}

func TestTextLayer_ContextCanceled(t *testing.T) {
	path := pdffixture.Write(t, filepath.Join(t.TempDir(), "doc.pdf"), pdffixture.Text("a"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTextLayer().WalkPages(ctx, path, func(int, string) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextLayer_PageCount(t *testing.T) {
	path := pdffixture.Write(t, filepath.Join(t.TempDir(), "doc.pdf"),
		pdffixture.Text("a"), pdffixture.Blank(), pdffixture.Text("c"))

	n, err := NewTextLayer().PageCount(path)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
