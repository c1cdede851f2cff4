// Package transcript loads OCR transcripts from local files. Plain text
// dumps are read as-is; digitally generated PDFs are reduced to their text
// layer. Image-only inputs are rejected here — recognition itself belongs
// to an upstream service.
package transcript

import (
	"os"
	"path/filepath"
	"strings"
)

// Transcript is the raw text of one receipt, ready for extraction.
type Transcript struct {
	Source string
	Text   string
	Pages  int
}

// Load reads a transcript from path, dispatching on the file extension.
func Load(path string) (*Transcript, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &Error{Code: ErrReadFailed, Message: "read transcript file", Cause: err}
		}
		return &Transcript{Source: path, Text: string(data), Pages: 1}, nil
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &Error{Code: ErrReadFailed, Message: "read PDF file", Cause: err}
		}
		t, err := FromPDF(data)
		if err != nil {
			return nil, err
		}
		t.Source = path
		return t, nil
	default:
		return nil, &Error{
			Code:    ErrUnsupportedFormat,
			Message: "unsupported transcript format: " + filepath.Ext(path),
		}
	}
}
