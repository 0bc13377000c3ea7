package extraction

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills: Python, </w:t></w:r><w:r><w:t>Docker &amp; Kubernetes</w:t></w:r></w:p>
</w:body>
</w:document>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want DocumentKind
	}{
		{name: "pdf extension", file: "cv.PDF", want: KindPDF},
		{name: "docx extension", file: "cv.docx", want: KindDOCX},
		{name: "html extension", file: "cv.htm", want: KindHTML},
		{name: "markdown", file: "cv.md", want: KindText},
		{name: "sniffed pdf", file: "upload", data: []byte("%PDF-1.4\n..."), want: KindPDF},
		{name: "sniffed html", file: "upload", data: []byte("<!DOCTYPE html><html></html>"), want: KindHTML},
		{name: "sniffed text", file: "upload", data: []byte("Python and SQL"), want: KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectKind(tt.file, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := DetectKind("photo", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
		assert.ErrorIs(t, err, ErrUnsupportedDocument)
	})
}

func TestDocumentText_DOCX(t *testing.T) {
	text, err := DocumentText("cv.docx", buildDocx(t))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "Skills: Python, Docker & Kubernetes")
	assert.NotContains(t, text, "w:t")
}

func TestDocumentText_HTMLAndText(t *testing.T) {
	text, err := DocumentText("cv.html", []byte("<html><body><ul><li>Go</li><li>SQL</li></ul></body></html>"))
	require.NoError(t, err)
	assert.Equal(t, "Go\nSQL", text)

	text, err = DocumentText("cv.txt", []byte("  Go   and SQL  \r\n"))
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL", text)
}

func TestDocumentText_Errors(t *testing.T) {
	t.Run("corrupt pdf", func(t *testing.T) {
		_, err := DocumentText("cv.pdf", []byte("not really a pdf"))
		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.Equal(t, KindPDF, docErr.Kind)
		assert.Equal(t, "cv.pdf", docErr.Name)
	})

	t.Run("corrupt docx", func(t *testing.T) {
		_, err := DocumentText("cv.docx", []byte("PK not a zip"))
		var docErr *DocumentError
		require.ErrorAs(t, err, &docErr)
		assert.Equal(t, KindDOCX, docErr.Kind)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := DocumentText("photo", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
		assert.True(t, errors.Is(err, ErrUnsupportedDocument))
	})
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, buildDocx(t), 0o644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")

	_, err = ReadDocument(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
