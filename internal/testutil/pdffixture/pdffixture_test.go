package pdffixture

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Structure(t *testing.T) {
	data := Build(Text("Hello"), Blank())

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4\n")))
	assert.True(t, bytes.HasSuffix(data, []byte("%%EOF\n")))
	assert.Contains(t, string(data), "/Count 2")
	assert.Contains(t, string(data), "(Hello) Tj")
	assert.Contains(t, string(data), "re f")
}

func TestBuild_XrefOffsets(t *testing.T) {
	data := Build(Text("a"))

	idx := bytes.Index(data, []byte("1 0 obj"))
	require.Positive(t, idx)
	assert.Contains(t, string(data), "0000000009 00000 n \n")
	assert.Equal(t, 9, idx)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)c\\`, escape(`a(b)c\`))
	assert.Equal(t, "caf?", escape("café"))
}

func TestWrite(t *testing.T) {
	path := Write(t, filepath.Join(t.TempDir(), "sub", "doc.pdf"), Text("x"))
	assert.FileExists(t, path)
}
