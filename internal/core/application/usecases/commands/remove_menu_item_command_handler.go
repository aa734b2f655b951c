package commands

import (
	"context"

	"canteen/internal/core/ports"
)

// RemoveMenuItemCommandHandler deletes menu items.
type RemoveMenuItemCommandHandler struct {
	menuItems ports.MenuItemRepository
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item removal.
func NewRemoveMenuItemCommandHandler(menuItems ports.MenuItemRepository) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{menuItems: menuItems}
}

// Handle removes the item. Returns errs.ObjectNotFoundError when the item
// does not exist.
func (h RemoveMenuItemCommandHandler) Handle(ctx context.Context, command RemoveMenuItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.menuItems.Remove(ctx, command.ItemID())
}
