package transcript

import "fmt"

// ErrorCode classifies transcript loading failures.
type ErrorCode string

const (
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrScannedPDF        ErrorCode = "SCANNED_PDF"
	ErrReadFailed        ErrorCode = "READ_FAILED"
)

// Error is a structured error for transcript loading failures.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
