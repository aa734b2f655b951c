package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// CancelOrderCommandHandler moves a prepared order to the canceled bucket.
// Racing a scan-completion of the same order is safe: exactly one of the two
// transitions commits, the other gets errs.CommitConflictError.
type CancelOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCancelOrderCommandHandler creates a handler for cancel operations.
func NewCancelOrderCommandHandler(orders ports.OrderRepository) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orders: orders}
}

// Handle loads the prepared order, derives the canceled copy and commits the
// transition. Returns errs.ObjectNotFoundError when the order is not in the
// prepared bucket.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	prepared, err := h.orders.Get(ctx, order.BucketPrepared, command.OrderID())
	if err != nil {
		return err
	}

	transition, err := prepared.Cancel()
	if err != nil {
		return err
	}

	return h.orders.CommitTransition(ctx, transition)
}
