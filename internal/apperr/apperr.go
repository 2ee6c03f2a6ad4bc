// Package apperr defines the stable error codes the HTTP API exposes.
// Every failure leaving a service layer carries one of these codes plus a
// human-readable message; handlers map codes to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

const (
	CodeNoFilesProvided         = "NoFilesProvided"
	CodeInvalidDeliverableType  = "InvalidDeliverableType"
	CodeUnknownDeliverableType  = "UnknownDeliverableType"
	CodeNoFileUploaded          = "NoFileUploaded"
	CodeFileTooLarge            = "FileTooLarge"
	CodeFileNotFound            = "FileNotFound"
	CodeUnsupportedFormat       = "UnsupportedFormat"
	CodeExtractionFailed        = "ExtractionFailed"
	CodeApiConfigurationError   = "ApiConfigurationError"
	CodeGenerationFailed        = "GenerationFailed"
	CodeEmptyResponse           = "EmptyResponse"
	CodeUnexpectedResponseShape = "UnexpectedResponseShape"
	CodeNotFound                = "NotFound"
	CodePersistenceFailed       = "PersistenceFailed"
)

// Error is a coded error. Message is safe to show to the caller; Err keeps
// the original cause for wrapping.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause. The cause text is
// appended to the message so the caller sees the original failure.
func Wrap(code, message string, err error) *Error {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of err, or empty when err carries none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageOf returns the caller-safe message of err, falling back to the raw
// error text for uncoded errors.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
