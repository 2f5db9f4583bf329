package analysis

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindTransport  ErrorKind = "transport"
	KindProtocol   ErrorKind = "protocol"
	KindDecode     ErrorKind = "decode"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the 5 MB limit")
	ErrUnsupportedType = errors.New("only PDF files can be analyzed")
	ErrEmptyFile       = errors.New("file is empty")
)

// RequestError describes why an analysis request failed. Status and Detail
// are only set for protocol errors.
type RequestError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	switch {
	case e.Kind == KindProtocol && e.Detail != "":
		return fmt.Sprintf("analysis %s error: status %d: %s", e.Kind, e.Status, e.Detail)
	case e.Kind == KindProtocol:
		return fmt.Sprintf("analysis %s error: status %d", e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("analysis %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("analysis %s error", e.Kind)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown in the error banner.
func (e *RequestError) UserMessage() string {
	switch e.Kind {
	case KindValidation:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "The selected file cannot be analyzed."
	case KindTransport:
		return "Could not reach the analysis service. Check your connection and try again."
	case KindProtocol:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("The analysis service returned an error (status %d).", e.Status)
	case KindDecode:
		return "The analysis service returned an unreadable response."
	}
	return "An error occurred while analyzing the document."
}

func NewValidationError(err error) *RequestError {
	return &RequestError{Kind: KindValidation, Err: err}
}
