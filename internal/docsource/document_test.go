package docsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfp.txt")
	require.NoError(t, os.WriteFile(path, []byte("Vendor shall provide hosting."), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rfp.txt", doc.Name)
	assert.Equal(t, "Vendor shall provide hosting.", doc.Text())
	assert.Nil(t, doc.Pages())
	assert.NotEmpty(t, doc.ID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestNew_AssignsID(t *testing.T) {
	pages := []Page{{Number: 1, Text: "first"}, {Number: 2, Text: "second"}}
	doc := New("rfp.pdf", "firstsecond", pages)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, pages, doc.Pages())

	other := New("rfp.pdf", "firstsecond", pages)
	assert.NotEqual(t, doc.ID, other.ID)
}
