package queries

import (
	"context"

	"canteen/internal/core/ports"
)

// GetMenuItemsQueryHandler lists the menu.
type GetMenuItemsQueryHandler struct {
	menuItems ports.MenuItemRepository
}

// NewGetMenuItemsQueryHandler creates the handler.
func NewGetMenuItemsQueryHandler(menuItems ports.MenuItemRepository) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{menuItems: menuItems}
}

// Handle returns menu items in store arrival order.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuItems.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toMenuItemResponse(item))
	}

	return responses, nil
}
