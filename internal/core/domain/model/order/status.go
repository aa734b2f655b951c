package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Prepared ──> Completed
//	               │
//	               └───────> Canceled
//
// Completed and Canceled are terminal states. Status is a value object that
// validates state transitions and provides the wire representation persisted
// in order documents.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Orders in this status are waiting to be prepared by staff.
	Pending

	// Prepared indicates the order is ready for pickup.
	// Prepared orders can still be canceled or completed by scan.
	Prepared

	// Completed indicates the order has been picked up.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Canceled indicates the order was canceled while prepared.
	// This is a terminal state with no further transitions allowed.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Prepared:  "prepared",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Prepared:  "prepared",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// StatusFromString parses the wire representation of a status as persisted in
// order documents. Returns an error for anything but the four valid statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if s == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Prepared, Completed, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("pending",
// "prepared", "completed", "canceled"), or "unknown" for invalid values.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// Prepare transitions the status to Prepared.
//
// Valid transitions:
//   - Pending -> Prepared (staff marked the order prepared)
//
// Returns:
//   - (Prepared, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Prepare() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to prepare", s.String()),
		)
	}

	return Prepared, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Prepared -> Canceled (staff canceled a prepared order)
//
// Pending orders cannot be canceled through the lifecycle engine; upstream
// ordering handles those before they reach the fulfillment pipeline.
func (s Status) Cancel() (Status, error) {
	if s != Prepared {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Prepared -> Completed (a scan resolved the prepared order)
func (s Status) Complete() (Status, error) {
	if s != Prepared {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
