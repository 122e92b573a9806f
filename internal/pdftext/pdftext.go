// Package pdftext turns uploaded resume PDFs into plain text for screening.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document yields no extractable text.
var ErrNoText = errors.New("no text could be extracted from the document")

// Extractor returns the plain text of a document.
type Extractor interface {
	Extract(r io.ReaderAt, size int64) (string, error)
}

// PDF extracts text page by page.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (p *PDF) Extract(r io.ReaderAt, size int64) (text string, err error) {
	// the parser panics on some malformed streams
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		if pageText == "" {
			continue
		}

		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	text = strings.TrimSpace(builder.String())
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}

// ExtractBytes extracts text from an in-memory document.
func ExtractBytes(e Extractor, data []byte) (string, error) {
	return e.Extract(bytes.NewReader(data), int64(len(data)))
}

// ExtractFile extracts text from the document stored at path.
func ExtractFile(e Extractor, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", err
	}

	text, err := e.Extract(file, stat.Size())
	if err != nil {
		return "", fmt.Errorf("extracting text from %q: %w", path, err)
	}

	return text, nil
}
