package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetRecentCompletedOrdersQueryIsNotConstructed = errors.New(
	"GetRecentCompletedOrdersQuery must be created via NewGetRecentCompletedOrdersQuery constructor",
)

// GetRecentCompletedOrdersQuery requests the completed orders that fall
// inside the retention window, newest first.
type GetRecentCompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRecentCompletedOrdersQuery creates the parameterless query.
func NewGetRecentCompletedOrdersQuery() GetRecentCompletedOrdersQuery {
	return GetRecentCompletedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRecentCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentCompletedOrdersQueryIsNotConstructed)
}
