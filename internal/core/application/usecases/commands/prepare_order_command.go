// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, a
// single atomic store commit, and explicit error mapping.
package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand requests moving one pending order to the prepared
// bucket. The kitchen issues it when the food is ready for pickup.
//
// Example:
//
//	cmd, err := NewPrepareOrderCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("prepare failed: %v", err)
//	}
type PrepareOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrepareOrderCommand creates the command. The order ID must be a valid
// key into the pending bucket.
func NewPrepareOrderCommand(orderID kernel.UUID) (PrepareOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PrepareOrderCommand{}, err
	}

	return PrepareOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

// OrderID returns the pending order's key.
func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
