// Package notification implements the notification documents appended to the
// store as a side effect of lifecycle transitions.
//
// Notifications are append-only from the engine's perspective: the engine
// only ever writes unread notifications, exactly one per successful
// transition, in the same atomic batch as the bucket move. Marking them read
// or dismissing them belongs to downstream consumers.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through ForTransition or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via ForTransition or RestoreNotification")

// Status marks whether the receiving user has seen the notification.
type Status string

const (
	// StatusUnread is the only status the lifecycle engine ever writes.
	StatusUnread Status = "unread"

	// StatusRead is written by downstream consumers, never by the engine.
	StatusRead Status = "read"
)

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusUnread && s != StatusRead {
		return errs.NewValueIsInvalidErrorWithCause("notification status",
			fmt.Errorf("%q is not a valid notification status", string(s)))
	}
	return nil
}

// Notification is the user-facing record of one lifecycle transition.
// The message always references the order number, since document keys are
// regenerated on every bucket move and mean nothing to the user.
type Notification struct {
	id          kernel.UUID
	userID      string
	title       string
	message     string
	orderNumber string
	timestamp   time.Time
	status      Status

	isConstructed bool
}

// ForTransition builds the notification for a lifecycle transition, using the
// moved order's fields. The timestamp is the caller's clock reading; the
// status is always unread.
//
// Titles and messages per transition kind:
//   - prepare:  "Order Ready for Pickup!"
//   - cancel:   "Order Canceled"
//   - complete: "Order Completed" (message lists the order's items)
func ForTransition(t *order.Transition, now time.Time) (*Notification, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	moved := t.Moved()
	n := &Notification{
		userID:        moved.UserID(),
		orderNumber:   moved.OrderNumber(),
		timestamp:     now,
		status:        StatusUnread,
		isConstructed: true,
	}

	switch t.Kind() {
	case order.TransitionPrepare:
		n.title = "Order Ready for Pickup!"
		n.message = fmt.Sprintf("Your order #%s is ready for pickup.", moved.OrderNumber())
	case order.TransitionCancel:
		n.title = "Order Canceled"
		n.message = fmt.Sprintf("Your order #%s has been canceled.", moved.OrderNumber())
	case order.TransitionComplete:
		n.title = "Order Completed"
		n.message = fmt.Sprintf("Your order #%s with items %s has been completed.",
			moved.OrderNumber(), itemList(moved.Items()))
	default:
		return nil, errs.NewValueIsInvalidError("transition kind")
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID string,
	title string,
	message string,
	orderNumber string,
	timestamp time.Time,
	status Status,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Notification{
		id:            id,
		userID:        userID,
		title:         title,
		message:       message,
		orderNumber:   orderNumber,
		timestamp:     timestamp,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification was created through a factory method.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned document key, zero until persisted.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the receiving user's reference.
func (n *Notification) UserID() string {
	return n.userID
}

// Title returns the short headline.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the human-readable content, always containing the order
// number.
func (n *Notification) Message() string {
	return n.message
}

// OrderNumber returns the displayed identifier of the order this
// notification refers to.
func (n *Notification) OrderNumber() string {
	return n.orderNumber
}

// Timestamp returns the creation time.
func (n *Notification) Timestamp() time.Time {
	return n.timestamp
}

// Status returns the read state.
func (n *Notification) Status() Status {
	return n.status
}

func itemList(items []order.Item) string {
	if len(items) == 0 {
		return "No items"
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name()
	}
	return strings.Join(names, ", ")
}
