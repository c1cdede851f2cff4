package transcript

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

const (
	maxTextBytes = 100 * 1024 // cap for extracted text

	// Below this many extractable chars per page the PDF is almost
	// certainly a scanned image with no usable text layer.
	scannedThreshold = 50
)

// FromPDF extracts the text layer of a digitally generated PDF. Scanned
// (image-only) PDFs are rejected: this package does no OCR. The pdf
// library panics on some malformed documents, so the whole pass runs
// under recover.
func FromPDF(data []byte) (t *Transcript, err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = &Error{
				Code:    ErrReadFailed,
				Message: "PDF text extraction",
				Cause:   fmt.Errorf("panic during PDF analysis: %v", r),
			}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Code: ErrReadFailed, Message: "open PDF reader", Cause: err}
	}

	pages := reader.NumPage()
	if pages < 1 {
		pages = 1
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return nil, &Error{Code: ErrReadFailed, Message: "extract plain text", Cause: err}
	}

	textBytes, err := io.ReadAll(io.LimitReader(plainText, int64(maxTextBytes)))
	if err != nil {
		return nil, &Error{Code: ErrReadFailed, Message: "read plain text", Cause: err}
	}

	text := string(textBytes)
	if isLikelyScanned(text, pages) {
		return nil, &Error{
			Code:    ErrScannedPDF,
			Message: fmt.Sprintf("PDF appears to be scanned (%d chars over %d pages); run it through OCR first", len(text), pages),
		}
	}

	return &Transcript{Text: text, Pages: pages}, nil
}

// isLikelyScanned reports whether the PDF has too little extractable text
// per page to be a digital document.
func isLikelyScanned(text string, pages int) bool {
	if pages <= 0 {
		pages = 1
	}
	return len(text)/pages < scannedThreshold
}
