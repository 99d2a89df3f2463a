package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

func TestClassifier_Classify(t *testing.T) {
	reader := newMockTextLayer()
	reader.pages["digital.pdf"] = []string{"Hello, World."}
	reader.pages["late.pdf"] = []string{"", "  \n\t", "text on page three"}
	reader.pages["scanned.pdf"] = []string{"", " ", "\n"}
	reader.pages["empty.pdf"] = nil

	c := NewClassifier(reader)
	ctx := context.Background()

	tests := []struct {
		path string
		want domain.DocumentKind
	}{
		{"digital.pdf", domain.KindDigital},
		{"late.pdf", domain.KindDigital},
		{"scanned.pdf", domain.KindScanned},
		{"empty.pdf", domain.KindScanned},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, err := c.Classify(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifier_StopsAtFirstTextPage(t *testing.T) {
	reader := newMockTextLayer()
	reader.pages["doc.pdf"] = []string{"", "first", "second", "third"}

	kind, err := NewClassifier(reader).Classify(context.Background(), "doc.pdf")

	require.NoError(t, err)
	assert.True(t, kind.IsDigital())
	assert.Equal(t, 2, reader.visited["doc.pdf"])
}

func TestClassifier_Deterministic(t *testing.T) {
	reader := newMockTextLayer()
	reader.pages["doc.pdf"] = []string{"", "words"}
	c := NewClassifier(reader)

	first, err := c.Classify(context.Background(), "doc.pdf")
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassifier_OpenError(t *testing.T) {
	reader := newMockTextLayer()
	reader.errs["broken.pdf"] = fmt.Errorf("%w: broken.pdf: bad header", domain.ErrDocumentOpen)

	kind, err := NewClassifier(reader).Classify(context.Background(), "broken.pdf")

	assert.ErrorIs(t, err, domain.ErrDocumentOpen)
	assert.False(t, kind.IsValid())
}
