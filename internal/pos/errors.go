package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError is a refused request (bad tender, empty order). Nothing
// was mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientTenderError means the tendered amount does not cover the total.
type InsufficientTenderError struct {
	Total    decimal.Decimal
	Tendered decimal.Decimal
}

func (e *InsufficientTenderError) Error() string {
	return fmt.Sprintf("tendered %s is less than total %s", e.Tendered.StringFixed(2), e.Total.StringFixed(2))
}

// RemoteError wraps a failure of an external collaborator (catalog source,
// order sink). Local state is left as it was.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *RemoteError) Unwrap() error { return e.Err }
