package ports

import (
	"context"

	"canteen/internal/core/domain/model/notification"
)

// NotificationRepository provides read access to the notifications
// collection. Notifications are only ever written as part of a lifecycle
// transition's atomic batch; there is no standalone write path.
type NotificationRepository interface {
	// GetAll retrieves all notifications in store arrival order.
	GetAll(ctx context.Context) ([]*notification.Notification, error)

	// GetAllForUser retrieves the notifications addressed to one user.
	GetAllForUser(ctx context.Context, userID string) ([]*notification.Notification, error)
}
