package util

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindMissingField      ErrorKind = "MissingField"
	KindInvalidFormat     ErrorKind = "InvalidFormat"
	KindNotFound          ErrorKind = "NotFound"
	KindConflict          ErrorKind = "Conflict"
	KindUpstreamFailure   ErrorKind = "UpstreamFailure"
	KindSignatureMismatch ErrorKind = "SignatureMismatch"
)

// AppError carries a kind that maps onto an HTTP status plus an optional
// lower-level cause surfaced as the response's details field.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindMissingField, KindInvalidFormat, KindSignatureMismatch:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func MissingFieldErr(field string) *AppError {
	return &AppError{Kind: KindMissingField, Message: "missing required field: " + field}
}

func InvalidFormatErr(message string) *AppError {
	return &AppError{Kind: KindInvalidFormat, Message: message}
}

func NotFoundErr(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ConflictErr(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func UpstreamErr(message string, err error) *AppError {
	return &AppError{Kind: KindUpstreamFailure, Message: message, Err: err}
}

func SignatureMismatchErr() *AppError {
	return &AppError{Kind: KindSignatureMismatch, Message: "payment signature verification failed"}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
