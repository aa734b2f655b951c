package queries

import (
	"canteen/internal/core/domain/model/order"
)

// OrderViews is the slice of the live view manager the order queries need:
// the current materialized content of one bucket.
type OrderViews interface {
	Orders(bucket order.Bucket) []*order.Order
}

// GetBucketOrdersQueryHandler serves bucket listings from the materialized
// live views, so reads never touch the store.
//
// Example:
//
//	handler := NewGetBucketOrdersQueryHandler(viewManager)
//	query, _ := NewGetBucketOrdersQuery(order.BucketPending)
//	orders, err := handler.Handle(query)
type GetBucketOrdersQueryHandler struct {
	views OrderViews
}

// NewGetBucketOrdersQueryHandler creates a handler backed by the given views.
func NewGetBucketOrdersQueryHandler(views OrderViews) GetBucketOrdersQueryHandler {
	return GetBucketOrdersQueryHandler{views: views}
}

// Handle returns the bucket's orders in store arrival order.
func (h GetBucketOrdersQueryHandler) Handle(query GetBucketOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return toOrderResponses(h.views.Orders(query.Bucket())), nil
}
