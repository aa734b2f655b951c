// Package queries contains read-only operations against the materialized
// live views and the document store. Queries never modify state; they return
// plain response structs decoupled from the domain aggregates.
package queries

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/notification"
	"canteen/internal/core/domain/model/order"
)

// OrderResponse is the read model for a single order.
type OrderResponse struct {
	ID          kernel.UUID
	OrderNumber string
	UserID      string
	Items       []OrderItemResponse
	TotalCost   float64
	Timeslot    string
	Status      string
	CreatedAt   time.Time
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	Name     string
	Quantity int
}

// NotificationResponse is the read model for a notification.
type NotificationResponse struct {
	ID          kernel.UUID
	UserID      string
	Title       string
	Message     string
	OrderNumber string
	Timestamp   time.Time
	Status      string
}

// MenuItemResponse is the read model for a menu item.
type MenuItemResponse struct {
	ID          kernel.UUID
	Name        string
	Price       float64
	Stock       int
	Description string
	CreatedAt   time.Time
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return OrderResponse{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		UserID:      o.UserID(),
		Items:       items,
		TotalCost:   o.TotalCost(),
		Timeslot:    o.Timeslot(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID(),
		UserID:      n.UserID(),
		Title:       n.Title(),
		Message:     n.Message(),
		OrderNumber: n.OrderNumber(),
		Timestamp:   n.Timestamp(),
		Status:      string(n.Status()),
	}
}

func toMenuItemResponse(m *menu.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID(),
		Name:        m.Name(),
		Price:       m.Price(),
		Stock:       m.Stock(),
		Description: m.Description(),
		CreatedAt:   m.CreatedAt(),
	}
}
