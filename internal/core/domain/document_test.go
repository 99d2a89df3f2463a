package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("/data/pdf_files/Service Inquiries/inquiry.pdf", "Service Inquiries")

	assert.Equal(t, "/data/pdf_files/Service Inquiries/inquiry.pdf", doc.Path)
	assert.Equal(t, "Service Inquiries", doc.Category)
	assert.Equal(t, "inquiry.pdf", doc.FileName())
}

func TestKindFromDigital(t *testing.T) {
	assert.Equal(t, KindDigital, KindFromDigital(true))
	assert.Equal(t, KindScanned, KindFromDigital(false))
}

func TestDocumentKind(t *testing.T) {
	tests := []struct {
		kind    DocumentKind
		valid   bool
		digital bool
	}{
		{KindDigital, true, true},
		{KindScanned, true, false},
		{DocumentKind("hybrid"), false, false},
		{DocumentKind(""), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.IsValid())
			assert.Equal(t, tt.digital, tt.kind.IsDigital())
			assert.Equal(t, string(tt.kind), tt.kind.String())
		})
	}
}
