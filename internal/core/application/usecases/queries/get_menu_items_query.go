package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery requests the full menu.
type GetMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates the parameterless query.
func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}
