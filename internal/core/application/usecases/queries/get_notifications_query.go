package queries

import (
	"errors"

	"canteen/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery requests stored notifications, optionally narrowed
// to a single user. An empty user ID means all notifications.
type GetNotificationsQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates the query.
func NewGetNotificationsQuery(userID string) GetNotificationsQuery {
	return GetNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the user filter; empty means no filter.
func (q GetNotificationsQuery) UserID() string {
	return q.userID
}
