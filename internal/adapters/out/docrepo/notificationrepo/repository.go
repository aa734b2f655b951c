// Package notificationrepo reads the notifications collection. Writes never
// happen here: a notification only comes into being inside a transition's
// atomic batch, committed by the order repository.
package notificationrepo

import (
	"context"

	"canteen/internal/adapters/out/docrepo/docfield"
	"canteen/internal/core/domain/model/notification"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

const (
	fieldUserID      = "userId"
	fieldTitle       = "title"
	fieldMessage     = "message"
	fieldOrderNumber = "orderNumber"
	fieldTimestamp   = "timestamp"
	fieldStatus      = "status"
)

var _ ports.NotificationRepository = (*Repository)(nil)

// Repository implements ports.NotificationRepository on top of a
// DocumentStore.
type Repository struct {
	store ports.DocumentStore
}

// NewRepository creates the repository. The store is required.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}

	return &Repository{store: store}, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]*notification.Notification, error) {
	docs, err := r.store.List(ctx, ports.CollectionNotifications)
	if err != nil {
		return nil, err
	}

	notes := make([]*notification.Notification, 0, len(docs))
	for _, doc := range docs {
		n, mapErr := toDomain(doc)
		if mapErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(ports.CollectionNotifications, mapErr)
		}
		notes = append(notes, n)
	}

	return notes, nil
}

func (r *Repository) GetAllForUser(ctx context.Context, userID string) ([]*notification.Notification, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}

	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]*notification.Notification, 0, len(all))
	for _, n := range all {
		if n.UserID() == userID {
			notes = append(notes, n)
		}
	}

	return notes, nil
}

func toDomain(doc ports.Document) (*notification.Notification, error) {
	userID, err := docfield.String(doc.Fields, fieldUserID)
	if err != nil {
		return nil, err
	}
	title, err := docfield.String(doc.Fields, fieldTitle)
	if err != nil {
		return nil, err
	}
	message, err := docfield.String(doc.Fields, fieldMessage)
	if err != nil {
		return nil, err
	}
	orderNumber, _ := docfield.String(doc.Fields, fieldOrderNumber)
	timestamp, err := docfield.Time(doc.Fields, fieldTimestamp)
	if err != nil {
		return nil, err
	}
	statusRaw, err := docfield.String(doc.Fields, fieldStatus)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(doc.Key, userID, title, message,
		orderNumber, timestamp, notification.Status(statusRaw))
}
