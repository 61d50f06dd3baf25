package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ionut-t/gridcanvas/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectNewline(t *testing.T) {
	assert.Equal(t, NewlineLF, DetectNewline("a\nb"))
	assert.Equal(t, NewlineCRLF, DetectNewline("a\r\nb"))
	assert.Equal(t, NewlineLF, DetectNewline("no breaks"))
}

func TestReadDocument(t *testing.T) {
	path := writeTemp(t, "art.txt", "ab\ncd\n")

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, NewlineLF, doc.Newline)
	assert.Equal(t, 2, doc.Buffer.Width)
	assert.Equal(t, "ab\ncd", doc.Buffer.ExternalText(false)[:5])
}

func TestReadDocumentCRLF(t *testing.T) {
	path := writeTemp(t, "art.txt", "ab\r\ncd")

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, NewlineCRLF, doc.Newline)
	assert.Equal(t, "ab\ncd", doc.Buffer.ExternalText(false))
}

func TestReadDocumentStripsBOM(t *testing.T) {
	path := writeTemp(t, "art.txt", "\uFEFFab")

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Buffer.Width)
	assert.Equal(t, "ab", doc.Buffer.ExternalText(false))
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, core.ErrReadFile)
}

func TestExportText(t *testing.T) {
	b := core.FromExternalText("ab\nc", 2, 2)

	assert.Equal(t, "ab\nc", ExportText(b, NewlineLF, false))
	assert.Equal(t, "ab\nc ", ExportText(b, NewlineLF, true))
	assert.Equal(t, "ab\r\nc", ExportText(b, NewlineCRLF, false))
}

func TestExportTextStripsNUL(t *testing.T) {
	b := core.NewBuffer(3, 1)
	b.SetCell(0, 0, "a")
	b.SetCell(0, 1, "\x00")
	b.SetCell(0, 2, "b")
	assert.Equal(t, "ab", ExportText(b, NewlineLF, false))
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := core.FromExternalText("+--+\n|  |\n+--+", 4, 3)

	require.NoError(t, WriteDocument(path, b, NewlineLF, true))

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, b.ExternalText(true), doc.Buffer.ExternalText(true))
}

func TestWriteDocumentRejectsInvalidPath(t *testing.T) {
	b := core.NewBuffer(1, 1)
	err := WriteDocument(filepath.Join(t.TempDir(), "bad|name.txt"), b, NewlineLF, false)
	assert.ErrorIs(t, err, core.ErrInvalidPath)
}
