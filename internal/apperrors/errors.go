package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so controllers can map it to an HTTP
// status without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks a malformed request: empty response list,
	// unresolvable question/option reference, missing required fields.
	KindValidation
	// KindNotFound marks a lookup by id that matched nothing.
	KindNotFound
	// KindPrecondition marks an operation attempted out of allowed state
	// order, e.g. authorizing an attempt that was never concluded.
	KindPrecondition
	// KindConflict marks an operation on an already-transitioned resource,
	// e.g. authorizing twice, or deleting a category still referenced.
	KindConflict
	// KindIntegrity marks a detected partial write during scoring. Fatal for
	// the request; never reported as success.
	KindIntegrity
)

// Error is the taxonomy error carried through services up to controllers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func Preconditionf(format string, args ...any) *Error {
	return newf(KindPrecondition, format, args...)
}

func Conflictf(format string, args ...any) *Error {
	return newf(KindConflict, format, args...)
}

func Integrityf(format string, args ...any) *Error {
	return newf(KindIntegrity, format, args...)
}

// Wrap attaches a cause while keeping the kind and a readable message.
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the taxonomy kind from anywhere in the chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus maps an error to the status controllers respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPrecondition:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
