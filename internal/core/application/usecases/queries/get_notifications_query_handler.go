package queries

import (
	"context"

	"canteen/internal/core/domain/model/notification"
	"canteen/internal/core/ports"
)

// GetNotificationsQueryHandler lists stored notifications.
type GetNotificationsQueryHandler struct {
	notifications ports.NotificationRepository
}

// NewGetNotificationsQueryHandler creates the handler.
func NewGetNotificationsQueryHandler(notifications ports.NotificationRepository) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{notifications: notifications}
}

// Handle returns notifications in store arrival order, filtered by user when
// the query names one.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var notes []*notification.Notification
	var err error
	if query.UserID() == "" {
		notes, err = h.notifications.GetAll(ctx)
	} else {
		notes, err = h.notifications.GetAllForUser(ctx, query.UserID())
	}
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, toNotificationResponse(n))
	}

	return responses, nil
}
