package services

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownProduct = errors.New("unknown product")
	ErrInvalidInput   = errors.New("invalid input")

	// ErrTableNotFreed comes with a valid receipt: the sale went through but
	// the table is still marked as taken.
	ErrTableNotFreed = errors.New("table status not reset")
)

// invalid wraps ErrInvalidInput with a user-facing reason.
func invalid(reason string) error {
	return &inputError{reason: reason}
}

type inputError struct{ reason string }

func (e *inputError) Error() string { return e.reason }

func (e *inputError) Unwrap() error { return ErrInvalidInput }
