package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
// Plain CRUD; menu items carry no transition logic.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	// Returns errs.ObjectNotFoundError when the item does not exist.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Remove deletes a menu item by key.
	// Returns errs.ObjectNotFoundError when the item does not exist.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item by key.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll retrieves all menu items in store arrival order.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)
}
