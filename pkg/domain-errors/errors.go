package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error so transport can map it to an HTTP status and
// callers can branch without string matching.
type Code string

const (
	CodeValidation   Code = "validation_error"
	CodeDelivery     Code = "delivery_failure"
	CodeAppend       Code = "append_failure"
	CodeStore        Code = "store_failure"
	CodeRender       Code = "render_failure"
	CodeInvalidState Code = "invalid_state"
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal_error"
)

// Error carries a code, a human-readable summary, and optional field-level
// detail for validation failures. The message must never contain secrets;
// technical detail lives in the wrapped cause, which transport never renders.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a coded domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidation builds a validation error with per-field messages.
func NewValidation(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// Wrap attaches a code and summary to an underlying error while keeping the
// technical detail available for logs via Unwrap.
func Wrap(code Code, message string, err error) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{Code: code, Message: message, cause: err}
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, or CodeInternal when err is not coded.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP status. Delivery, append and store
// failures surface as 502 because the blocking party is a collaborator, not
// the caller.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidState:
		return http.StatusConflict
	case CodeDelivery, CodeAppend, CodeStore:
		return http.StatusBadGateway
	case CodeRender:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
