package commands

import (
	"context"
	"time"

	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
)

// AddMenuItemCommandHandler persists new menu items.
type AddMenuItemCommandHandler struct {
	menuItems ports.MenuItemRepository
	clock     func() time.Time
}

// NewAddMenuItemCommandHandler creates a handler for menu item creation.
func NewAddMenuItemCommandHandler(menuItems ports.MenuItemRepository) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		menuItems: menuItems,
		clock:     time.Now,
	}
}

// Handle builds the menu item aggregate and stores it under the command's
// item ID.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, command AddMenuItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(
		command.ItemID(),
		command.Name(),
		command.Price(),
		command.Stock(),
		command.Description(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	return h.menuItems.Add(ctx, item)
}
