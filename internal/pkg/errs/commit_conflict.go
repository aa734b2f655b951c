package errs

import (
	"errors"
	"fmt"
)

// ErrCommitConflict is the sentinel error for all CommitConflictError values.
var ErrCommitConflict = errors.New("commit conflict")

// CommitConflictError indicates that an atomic batch commit was rejected
// because one of its delete targets no longer exists. This happens when a
// concurrent actor moved the same document between the caller's read and its
// commit. The store state is unchanged; the caller's view is stale and should
// be refreshed.
type CommitConflictError struct {
	Collection string
	Key        string
	Cause      error
}

// NewCommitConflictError creates a CommitConflictError without a cause.
func NewCommitConflictError(collection, key string) *CommitConflictError {
	return &CommitConflictError{Collection: collection, Key: key}
}

// NewCommitConflictErrorWithCause creates a CommitConflictError wrapping an
// underlying cause.
func NewCommitConflictErrorWithCause(collection, key string, cause error) *CommitConflictError {
	return &CommitConflictError{Collection: collection, Key: key, Cause: cause}
}

func (e *CommitConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: delete target %s/%s is gone (cause: %s)",
			ErrCommitConflict, e.Collection, e.Key, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: delete target %s/%s is gone",
		ErrCommitConflict, e.Collection, e.Key))
}

func (e *CommitConflictError) Unwrap() error {
	return ErrCommitConflict
}
