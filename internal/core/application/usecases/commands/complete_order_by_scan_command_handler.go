package commands

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// ErrOrderNotPrepared reports that a scanned payload did not resolve to an
// order currently in the prepared bucket. This covers unparseable payloads,
// unknown keys and orders that were already completed or canceled; in every
// case the store is left untouched.
var ErrOrderNotPrepared = errors.New("scanned payload does not match a prepared order")

// CompleteOrderByScanCommandHandler resolves a scanned pickup code and moves
// the matching prepared order to the completed bucket.
//
// Scanning the same code twice is harmless: the second scan finds no
// prepared order and reports ErrOrderNotPrepared without writing anything.
//
// Example:
//
//	handler := NewCompleteOrderByScanCommandHandler(orderRepo)
//	cmd := NewCompleteOrderByScanCommand(scannedText)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, ErrOrderNotPrepared):
//	    // Not an error condition, the code just did not match.
//	case err != nil:
//	    log.Printf("completion failed: %v", err)
//	}
type CompleteOrderByScanCommandHandler struct {
	orders ports.OrderRepository
}

// NewCompleteOrderByScanCommandHandler creates a handler for scan-driven
// order completion.
func NewCompleteOrderByScanCommandHandler(orders ports.OrderRepository) CompleteOrderByScanCommandHandler {
	return CompleteOrderByScanCommandHandler{orders: orders}
}

// Handle resolves the payload against the prepared bucket and commits the
// completion transition. Returns ErrOrderNotPrepared when the payload does
// not parse as a key or no prepared order holds that key.
func (h CompleteOrderByScanCommandHandler) Handle(ctx context.Context, command CompleteOrderByScanCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(command.Payload())
	if err != nil {
		return ErrOrderNotPrepared
	}

	prepared, err := h.orders.Get(ctx, order.BucketPrepared, orderID)
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ErrOrderNotPrepared
	}
	if err != nil {
		return err
	}

	transition, err := prepared.Complete()
	if err != nil {
		return err
	}

	return h.orders.CommitTransition(ctx, transition)
}
