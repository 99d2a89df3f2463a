package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestParseDocumentURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		category string
		file     string
	}{
		{
			name:     "valid document URI",
			uri:      "pdfwords://documents/Service Inquiries/a.pdf",
			category: "Service Inquiries",
			file:     "a.pdf",
		},
		{
			name:     "escaped names",
			uri:      "pdfwords://documents/Service%20Inquiries/a%20b.pdf",
			category: "Service Inquiries",
			file:     "a b.pdf",
		},
		{
			name: "escaped separator",
			uri:  "pdfwords://documents/A/..%2Fb.pdf",
		},
		{
			name: "invalid prefix",
			uri:  "file://documents/A/a.pdf",
		},
		{
			name: "missing file",
			uri:  "pdfwords://documents/A",
		},
		{
			name: "nested path",
			uri:  "pdfwords://documents/A/b/c.pdf",
		},
		{
			name: "parent directory",
			uri:  "pdfwords://documents/../a.pdf",
		},
		{
			name: "empty segment",
			uri:  "pdfwords://documents//a.pdf",
		},
		{
			name: "empty URI",
			uri:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, file := parseDocumentURI(tt.uri)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.file, file)
		})
	}
}

func TestServer_handleConfigResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists set values", func(t *testing.T) {
		cfg := &mockConfigService{values: map[string]string{
			domain.KeyInputRoot: "/data/pdfs",
			domain.KeyOCRDPI:    "300",
		}}
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}, Config: cfg})
		require.NoError(t, err)

		result, err := server.handleConfigResource(ctx, readRequest("pdfwords://config"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var info configInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, cfg.Path(), info.Path)
		assert.Equal(t, cfg.values, info.Values)
	})

	t.Run("no config service returns empty values", func(t *testing.T) {
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}})
		require.NoError(t, err)

		result, err := server.handleConfigResource(ctx, readRequest("pdfwords://config"))

		require.NoError(t, err)
		assert.JSONEq(t, `{"path":"","values":{}}`, result.Contents[0].Text)
	})

	t.Run("returns error on config failure", func(t *testing.T) {
		cfg := &mockConfigService{err: errors.New("parse error")}
		server, err := NewServer(&Ports{Extraction: &mockExtractionService{}, Config: cfg})
		require.NoError(t, err)

		_, err = server.handleConfigResource(ctx, readRequest("pdfwords://config"))

		assert.ErrorContains(t, err, "parse error")
	})
}

func TestServer_handleDocumentWordsResource(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join("data", "pdf_files")
	path := filepath.Join(root, "A", "a.pdf")
	doc := domain.NewDocument(path, "A")

	t.Run("returns joined words", func(t *testing.T) {
		ext := &mockExtractionService{
			records: map[string]domain.ExtractedRecord{
				path: domain.NewExtractedRecord("1", doc, domain.KindDigital, 1, []string{"hello", "world"}),
			},
		}
		server, err := NewServer(&Ports{Extraction: ext, Root: root})
		require.NoError(t, err)

		result, err := server.handleDocumentWordsResource(ctx, readRequest("pdfwords://documents/A/a.pdf"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "hello world", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, []string{path}, ext.paths)
	})

	t.Run("invalid URI is not found", func(t *testing.T) {
		ext := &mockExtractionService{}
		server, err := NewServer(&Ports{Extraction: ext, Root: root})
		require.NoError(t, err)

		_, err = server.handleDocumentWordsResource(ctx, readRequest("pdfwords://documents/../../etc/passwd"))

		assert.Error(t, err)
		assert.Empty(t, ext.paths)
	})

	t.Run("returns error on extraction failure", func(t *testing.T) {
		ext := &mockExtractionService{err: domain.ErrDocumentOpen}
		server, err := NewServer(&Ports{Extraction: ext, Root: root})
		require.NoError(t, err)

		_, err = server.handleDocumentWordsResource(ctx, readRequest("pdfwords://documents/A/a.pdf"))

		assert.ErrorIs(t, err, domain.ErrDocumentOpen)
	})
}
