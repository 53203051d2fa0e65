package xerrors

import (
	"errors"
	"fmt"
)

// Error kinds shared by every service. Handlers map them to HTTP status codes.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict: resource already exists")
	ErrIllegalState      = errors.New("operation not allowed in current state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInternal          = errors.New("internal server error")
	ErrRateLimited       = errors.New("too many requests")
)

// kindError carries a human readable message while still matching its kind
// through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// New returns an error of the given kind with a specific message.
func New(kind error, message string) error {
	return &kindError{kind: kind, msg: message}
}

// Newf is New with formatting.
func Newf(kind error, format string, args ...interface{}) error {
	return &kindError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
