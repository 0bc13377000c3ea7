package extraction

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentKind is the format of an uploaded or on-disk resume.
type DocumentKind string

const (
	KindText DocumentKind = "text"
	KindHTML DocumentKind = "html"
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
)

// ErrUnsupportedDocument is returned for formats other than text, HTML, PDF and DOCX.
var ErrUnsupportedDocument = errors.New("unsupported document type")

// DocumentError reports a resume document that could not be turned into text.
type DocumentError struct {
	Name  string
	Kind  DocumentKind
	Cause error
}

func (e *DocumentError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("failed to read document %s: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("failed to read %s document %s: %v", e.Kind, e.Name, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// DetectKind picks a format from the file extension, then from the content.
func DetectKind(name string, data []byte) (DocumentKind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".html", ".htm":
		return KindHTML, nil
	case ".txt", ".text", ".md":
		return KindText, nil
	}

	mime := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(mime, "application/pdf"):
		return KindPDF, nil
	case strings.HasPrefix(mime, "text/html"):
		return KindHTML, nil
	case strings.HasPrefix(mime, "text/plain"):
		return KindText, nil
	case strings.HasPrefix(mime, "application/zip"):
		// DOCX is a zip container; anything else inside fails to parse below.
		return KindDOCX, nil
	default:
		return "", ErrUnsupportedDocument
	}
}

// DocumentText converts a resume document to plain text.
func DocumentText(name string, data []byte) (string, error) {
	kind, err := DetectKind(name, data)
	if err != nil {
		return "", &DocumentError{Name: name, Cause: err}
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = pdfText(data)
	case KindDOCX:
		text, err = docxText(data)
	case KindHTML:
		text, err = PlainText(string(data))
	default:
		text = CleanText(string(data))
	}
	if err != nil {
		return "", &DocumentError{Name: name, Kind: kind, Cause: err}
	}
	return text, nil
}

// ReadDocument reads a resume file and converts it to plain text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return DocumentText(filepath.Base(path), data)
}

func pdfText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return CleanText(sb.String()), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	// The body is WordprocessingML; end each paragraph with a newline and keep only text.
	content := strings.ReplaceAll(doc.Editable().GetContent(), "</w:p>", "</w:p>\n")
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	return CleanText(parsed.Text()), nil
}
