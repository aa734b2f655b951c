package order

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a food order moving through the fulfillment pipeline.
// It is the aggregate root that owns the lifecycle state machine.
//
// Order follows these invariants:
//   - Must have a valid order number and user reference
//   - Total cost is non-negative
//   - createdAt is set once at creation and never mutated
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The document key is assigned by the backing store. An order freshly moved
// between buckets carries no key until its destination document is committed;
// see Transition.
type Order struct {
	// id is the store-assigned document key (zero for an uncommitted move copy)
	id kernel.UUID

	// orderNumber is the displayed identifier; not guaranteed globally unique
	orderNumber string

	// userID is an opaque reference to the placing user
	userID string

	// items is the ordered sequence of order lines
	items []Item

	// totalCost is the order total, currency-agnostic
	totalCost float64

	// timeslot is an optional pickup-slot label
	timeslot string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement time, set once
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new pending Order with validation. Orders enter the
// pipeline in Pending status; any other status is reached only through
// lifecycle transitions.
//
// Parameters:
//   - id: store-assigned document key (must be valid)
//   - orderNumber: displayed identifier (required)
//   - userID: reference to the placing user (required)
//   - items: order lines, each created via NewItem (may be empty)
//   - totalCost: order total (must not be negative)
//   - timeslot: optional pickup-slot label
//   - createdAt: placement time (must not be zero)
//
// Example:
//
//	item, _ := order.NewItem("Burger", 2)
//	o, err := order.NewOrder(kernel.NewUUID(), "A-42", "u1",
//	    []order.Item{item}, 5.50, "12:00-12:30", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	userID string,
	items []Item,
	totalCost float64,
	timeslot string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		timeslot:      timeslot,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setUserID(userID),
		o.setItems(items),
		o.setTotalCost(totalCost),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// status. Used by repositories when rehydrating documents; the status must
// match the bucket the document was read from.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	userID string,
	items []Item,
	totalCost float64,
	timeslot string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, userID, items, totalCost, timeslot, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their document keys.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's store-assigned document key.
// The key is zero for a move copy that has not been committed yet.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the displayed order identifier. This is the only
// identifier stable across bucket moves.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the opaque reference to the placing user.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns the order lines in placement order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalCost returns the order total.
func (o *Order) TotalCost() float64 {
	return o.totalCost
}

// Timeslot returns the optional pickup-slot label, empty when unset.
func (o *Order) Timeslot() string {
	return o.timeslot
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Bucket returns the bucket the order's status maps to.
func (o *Order) Bucket() Bucket {
	return bucketForStatus(o.status)
}

// Prepare describes the pending→prepared move as a Transition.
//
// The order itself is not mutated: the returned Transition carries a copy
// with status overwritten to Prepared and its key cleared for store
// reassignment, plus the source document to delete. The move becomes real
// only when the repository commits the transition atomically.
//
// Returns an error if the order is not in Pending status.
func (o *Order) Prepare() (*Transition, error) {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return nil, err
	}

	return o.transitionTo(TransitionPrepare, newStatus)
}

// Cancel describes the prepared→canceled move as a Transition.
// Returns an error if the order is not in Prepared status.
func (o *Order) Cancel() (*Transition, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	return o.transitionTo(TransitionCancel, newStatus)
}

// Complete describes the prepared→completed move as a Transition.
// Returns an error if the order is not in Prepared status.
func (o *Order) Complete() (*Transition, error) {
	newStatus, err := o.status.Complete()
	if err != nil {
		return nil, err
	}

	return o.transitionTo(TransitionComplete, newStatus)
}

func (o *Order) transitionTo(kind TransitionKind, newStatus Status) (*Transition, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.id.Validate(); err != nil {
		// A move copy cannot be moved again before it is committed.
		return nil, err
	}

	moved := &Order{
		orderNumber:   o.orderNumber,
		userID:        o.userID,
		items:         o.Items(),
		totalCost:     o.totalCost,
		timeslot:      o.timeslot,
		status:        newStatus,
		createdAt:     o.createdAt,
		isConstructed: true,
	}

	return newTransition(kind, o.Bucket(), o.id, bucketForStatus(newStatus), moved)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalCost(totalCost float64) error {
	if totalCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost",
			fmt.Errorf("%f is negative", totalCost))
	}
	o.totalCost = totalCost
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
