package queries

import (
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
)

// GetRecentCompletedOrdersQueryHandler serves the completed bucket filtered
// through the retention policy: only orders placed within the trailing
// window are returned, newest first.
//
// Example:
//
//	handler := NewGetRecentCompletedOrdersQueryHandler(viewManager,
//	    services.NewRetentionPolicy(0))
//	recent, err := handler.Handle(NewGetRecentCompletedOrdersQuery())
type GetRecentCompletedOrdersQueryHandler struct {
	views     OrderViews
	retention services.RetentionPolicy
	clock     func() time.Time
}

// NewGetRecentCompletedOrdersQueryHandler creates the handler.
func NewGetRecentCompletedOrdersQueryHandler(
	views OrderViews,
	retention services.RetentionPolicy,
) GetRecentCompletedOrdersQueryHandler {
	return GetRecentCompletedOrdersQueryHandler{
		views:     views,
		retention: retention,
		clock:     time.Now,
	}
}

// Handle filters the completed view through the retention window.
func (h GetRecentCompletedOrdersQueryHandler) Handle(
	query GetRecentCompletedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	completed := h.views.Orders(order.BucketCompleted)
	recent := h.retention.Apply(completed, h.clock())

	return toOrderResponses(recent), nil
}
