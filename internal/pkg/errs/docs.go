// Package errs provides standardized error types for the canteen application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy the order lifecycle engine needs:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input, rejected before any store interaction
//   - ObjectNotFoundError: a point read or lookup target is absent
//   - CommitConflictError: an atomic batch was rejected because a delete
//     target vanished between read and commit
//   - StoreUnavailableError: the backing store could not be reached; the
//     whole operation may be retried by the caller
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is works
package errs
