package commands

import (
	"context"

	"canteen/internal/core/ports"
)

// UpdateMenuItemCommandHandler replaces a stored menu item's attributes
// while keeping its key stable.
type UpdateMenuItemCommandHandler struct {
	menuItems ports.MenuItemRepository
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(menuItems ports.MenuItemRepository) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{menuItems: menuItems}
}

// Handle loads the item, applies the new attributes and persists the result.
// Returns errs.ObjectNotFoundError when the item does not exist.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, command UpdateMenuItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	item, err := h.menuItems.Get(ctx, command.ItemID())
	if err != nil {
		return err
	}

	if err = item.Update(
		command.Name(),
		command.Price(),
		command.Stock(),
		command.Description(),
	); err != nil {
		return err
	}

	return h.menuItems.Update(ctx, item)
}
