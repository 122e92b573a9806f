package pdftext

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	text string
	err  error
	size int64
	read []byte
}

func (s *stubExtractor) Extract(r io.ReaderAt, size int64) (string, error) {
	s.size = size
	s.read = make([]byte, size)
	if _, err := r.ReadAt(s.read, 0); err != nil && err != io.EOF {
		return "", err
	}
	return s.text, s.err
}

func TestPDFExtractRejectsGarbage(t *testing.T) {
	_, err := ExtractBytes(NewPDF(), []byte("definitely not a pdf"))
	require.Error(t, err)
}

func TestPDFExtractRejectsEmptyInput(t *testing.T) {
	_, err := ExtractBytes(NewPDF(), nil)
	require.Error(t, err)
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-stub"), 0o600))

	stub := &stubExtractor{text: "Python developer"}
	text, err := ExtractFile(stub, path)
	require.NoError(t, err)

	assert.Equal(t, "Python developer", text)
	assert.Equal(t, int64(len("%PDF-stub")), stub.size)
	assert.Equal(t, "%PDF-stub", string(stub.read))
}

func TestExtractFileWrapsExtractorError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-stub"), 0o600))

	_, err := ExtractFile(&stubExtractor{err: ErrNoText}, path)
	require.ErrorIs(t, err, ErrNoText)
	assert.Contains(t, err.Error(), "scan.pdf")
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile(&stubExtractor{}, filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoText)
}
