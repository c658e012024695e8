package convert

import "errors"

// ErrorKind tags an Error with the failure category so callers can
// branch on kind while keeping the original message for display.
type ErrorKind string

const (
	ErrFileSystem     ErrorKind = "FileSystem"
	ErrFileType       ErrorKind = "FileType"
	ErrPDF            ErrorKind = "PDF"
	ErrPageValidation ErrorKind = "PageValidation"
)

// Error is the tagged error type used for every failure surfaced to the
// user. The wrapped cause, when present, is appended to the message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or the empty string when err is not a
// tagged conversion error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
