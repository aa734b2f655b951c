package commands

import (
	"context"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
)

// PrepareOrderCommandHandler moves a pending order to the prepared bucket.
// The move, the source delete and the pickup notification are committed as
// one atomic batch; a concurrent move of the same order surfaces as
// errs.CommitConflictError and leaves the store unchanged.
//
// Example:
//
//	handler := NewPrepareOrderCommandHandler(orderRepo)
//	cmd, _ := NewPrepareOrderCommand(orderID)
//	switch err := handler.Handle(ctx, cmd); {
//	case err != nil:
//	    log.Printf("prepare failed: %v", err)
//	default:
//	    log.Println("order is ready for pickup")
//	}
type PrepareOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewPrepareOrderCommandHandler creates a handler for prepare operations.
func NewPrepareOrderCommandHandler(orders ports.OrderRepository) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{orders: orders}
}

// Handle loads the pending order, derives the prepared copy and commits the
// transition. Returns errs.ObjectNotFoundError when the order is not in the
// pending bucket.
func (h PrepareOrderCommandHandler) Handle(ctx context.Context, command PrepareOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	pending, err := h.orders.Get(ctx, order.BucketPending, command.OrderID())
	if err != nil {
		return err
	}

	transition, err := pending.Prepare()
	if err != nil {
		return err
	}

	return h.orders.CommitTransition(ctx, transition)
}
