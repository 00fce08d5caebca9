package errs

import (
	"errors"
	"net/http"
)

// Errors surfaced to HTTP clients. Wrap and WithDetails return copies, the
// values below are never modified.
var (
	ErrInvalidParams = New(BizCodeInvalidParams, http.StatusBadRequest, "invalid params", nil)

	ErrProjectNotFound         = New(BizCodeProjectNotFound, http.StatusNotFound, "project not found", nil)
	ErrVersionNotFound         = New(BizCodeVersionNotFound, http.StatusNotFound, "version not found", nil)
	ErrNoBuildsAvailable       = New(BizCodeNoBuildsAvailable, http.StatusNotFound, "no builds available", nil)
	ErrUpstreamUnavailable     = New(BizCodeUpstreamUnavailable, http.StatusBadGateway, "downloads api unavailable", nil)
	ErrResolverMissingArgument = New(BizCodeResolverMissingArgument, http.StatusInternalServerError, "download url resolver called with a missing argument", nil)
	ErrClipboardWriteFailed    = New(BizCodeClipboardWriteFailed, http.StatusInternalServerError, "failed to write to clipboard", nil)
)

// Error is a failure with a business code and the HTTP status it maps to.
// Two errors match with errors.Is when their business codes are equal.
type Error struct {
	bizCode  int
	httpCode int
	message  string
	details  any
	internal error
}

func New(bizCode, httpCode int, message string, internal error) *Error {
	return &Error{
		bizCode:  bizCode,
		httpCode: httpCode,
		message:  message,
		internal: internal,
	}
}

// NewUnexpected marks cause as an internal failure whose details must not
// reach the client.
func NewUnexpected(cause error) *Error {
	return New(BizCodeUnexpected, http.StatusInternalServerError, "unexpected error", cause)
}

func (e *Error) Error() string {
	if e.internal == nil {
		return e.message
	}
	return e.message + ": " + e.internal.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.bizCode == t.bizCode
}

func (e *Error) Unwrap() error { return e.internal }

func (e *Error) BizCode() int { return e.bizCode }

func (e *Error) HTTPCode() int { return e.httpCode }

func (e *Error) Message() string { return e.message }

func (e *Error) Details() any { return e.details }

func (e *Error) Wrap(err error) *Error {
	c := *e
	c.internal = err
	return &c
}

func (e *Error) WithDetails(details any) *Error {
	c := *e
	c.details = details
	return &c
}
