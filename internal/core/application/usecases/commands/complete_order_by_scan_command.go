package commands

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrCompleteOrderByScanCommandIsNotConstructed = errors.New(
	"CompleteOrderByScanCommand must be created via NewCompleteOrderByScanCommand constructor",
)

// CompleteOrderByScanCommand carries the raw payload of a scanned pickup
// code. The payload is deliberately untyped: scanners deliver arbitrary
// strings, and a payload that does not resolve to a prepared order is a
// normal outcome, not a validation failure.
type CompleteOrderByScanCommand struct {
	payload string

	guard guard.ConstructorGuard
}

// NewCompleteOrderByScanCommand creates the command from a raw scan payload.
// Any string is accepted; resolution happens in the handler.
func NewCompleteOrderByScanCommand(payload string) CompleteOrderByScanCommand {
	return CompleteOrderByScanCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderByScanCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderByScanCommandIsNotConstructed)
}

// Payload returns the raw scanned string.
func (c CompleteOrderByScanCommand) Payload() string {
	return c.payload
}
