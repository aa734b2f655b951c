package commands

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents a request to take a dish off the menu.
type RemoveMenuItemCommand struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates the command. The item ID must be valid.
func NewRemoveMenuItemCommand(itemID kernel.UUID) (RemoveMenuItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return RemoveMenuItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// ItemID returns the key of the item to remove.
func (c RemoveMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
