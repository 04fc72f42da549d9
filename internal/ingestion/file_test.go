package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nEDUCATION\nState University"), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n## EDUCATION\nState University", text)
	require.NotNil(t, meta)
	assert.Equal(t, "resume.txt", meta.Filename)
	assert.Equal(t, "text", meta.Format)
	assert.NotEmpty(t, meta.Hash)
	assert.Equal(t, 6, meta.Words)
}

func TestIngestFromFileMissing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestIngestBytesHTML(t *testing.T) {
	html := `<main><h2>SKILLS</h2><p>Python, Go</p></main>`

	text, meta, err := IngestBytes([]byte(html), "resume.html")
	require.NoError(t, err)

	assert.Equal(t, "SKILLS\nPython, Go", text)
	assert.Equal(t, "html", meta.Format)
}

func TestIngestBytesUnsupportedFormat(t *testing.T) {
	_, _, err := IngestBytes([]byte{0x25, 0x50}, "resume.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSupportedFile(t *testing.T) {
	assert.True(t, SupportedFile("resume.txt"))
	assert.True(t, SupportedFile("resume.HTML"))
	assert.True(t, SupportedFile("resume.md"))
	assert.False(t, SupportedFile("resume.pdf"))
	assert.False(t, SupportedFile("resume.docx"))
}