package errs

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is the sentinel error for all StoreUnavailableError values.
var ErrStoreUnavailable = errors.New("store unavailable")

// StoreUnavailableError indicates a transient failure talking to the backing
// store. No state was changed; the caller may retry the whole operation.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError for the given
// store operation, wrapping the transport-level cause.
func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Op))
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
