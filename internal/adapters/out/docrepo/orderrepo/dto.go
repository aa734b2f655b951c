package orderrepo

import (
	"time"

	"canteen/internal/adapters/out/docrepo/docfield"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// Document field names for the order buckets. Every bucket shares the same
// shape; only the status value differs between collections.
const (
	fieldOrderNumber = "orderNumber"
	fieldUserID      = "userId"
	fieldItems       = "items"
	fieldItemName    = "name"
	fieldItemQty     = "quantity"
	fieldTotalCost   = "totalCost"
	fieldTimeslot    = "timeslot"
	fieldStatus      = "status"
	fieldCreatedAt   = "createdAt"
)

func toFields(o *order.Order) map[string]any {
	items := make([]any, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, map[string]any{
			fieldItemName: item.Name(),
			fieldItemQty:  item.Quantity(),
		})
	}

	return map[string]any{
		fieldOrderNumber: o.OrderNumber(),
		fieldUserID:      o.UserID(),
		fieldItems:       items,
		fieldTotalCost:   o.TotalCost(),
		fieldTimeslot:    o.Timeslot(),
		fieldStatus:      o.Status().String(),
		fieldCreatedAt:   docfield.FormatTime(o.CreatedAt()),
	}
}

// toDomain rehydrates an order from a bucket document. The stored status must
// agree with the bucket the document was read from; a mismatch means the
// document was written outside the lifecycle engine and is rejected.
func toDomain(doc ports.Document, bucket order.Bucket) (*order.Order, error) {
	orderNumber, err := docfield.String(doc.Fields, fieldOrderNumber)
	if err != nil {
		return nil, err
	}
	userID, err := docfield.String(doc.Fields, fieldUserID)
	if err != nil {
		return nil, err
	}
	items, err := itemsField(doc.Fields)
	if err != nil {
		return nil, err
	}
	totalCost, err := docfield.Float(doc.Fields, fieldTotalCost)
	if err != nil {
		return nil, err
	}
	timeslot, _ := docfield.String(doc.Fields, fieldTimeslot)
	createdAt, err := docfield.Time(doc.Fields, fieldCreatedAt)
	if err != nil {
		return nil, err
	}

	statusRaw, err := docfield.String(doc.Fields, fieldStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(statusRaw)
	if err != nil {
		return nil, err
	}
	if status != bucket.Status() {
		return nil, errs.NewValueIsInvalidError(fieldStatus)
	}

	return order.RestoreOrder(doc.Key, orderNumber, userID, items, totalCost,
		timeslot, status, createdAt)
}

func notificationFields(userID, title, message, orderNumber string,
	timestamp time.Time, status string,
) map[string]any {
	return map[string]any{
		fieldUserID:      userID,
		"title":          title,
		"message":        message,
		fieldOrderNumber: orderNumber,
		"timestamp":      docfield.FormatTime(timestamp),
		fieldStatus:      status,
	}
}

func itemsField(fields map[string]any) ([]order.Item, error) {
	raw, ok := fields[fieldItems]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, errs.NewValueIsInvalidError(fieldItems)
	}

	items := make([]order.Item, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, errs.NewValueIsInvalidError(fieldItems)
		}
		name, err := docfield.String(m, fieldItemName)
		if err != nil {
			return nil, err
		}
		quantity, err := docfield.Int(m, fieldItemQty)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(name, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
