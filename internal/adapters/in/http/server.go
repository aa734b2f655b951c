// Package http exposes the order lifecycle engine over a REST API. Handlers
// translate between JSON payloads and the command/query layer; all domain
// rules stay behind the handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	prepareOrderHandler        commands.PrepareOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	completeOrderByScanHandler commands.CompleteOrderByScanCommandHandler
	addMenuItemHandler         commands.AddMenuItemCommandHandler
	updateMenuItemHandler      commands.UpdateMenuItemCommandHandler
	removeMenuItemHandler      commands.RemoveMenuItemCommandHandler

	// Query handlers
	getBucketOrdersHandler          queries.GetBucketOrdersQueryHandler
	getRecentCompletedOrdersHandler queries.GetRecentCompletedOrdersQueryHandler
	getNotificationsHandler         queries.GetNotificationsQueryHandler
	getMenuItemsHandler             queries.GetMenuItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderByScanHandler commands.CompleteOrderByScanCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	removeMenuItemHandler commands.RemoveMenuItemCommandHandler,
	getBucketOrdersHandler queries.GetBucketOrdersQueryHandler,
	getRecentCompletedOrdersHandler queries.GetRecentCompletedOrdersQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getMenuItemsHandler queries.GetMenuItemsQueryHandler,
) *Server {
	return &Server{
		prepareOrderHandler:             prepareOrderHandler,
		cancelOrderHandler:              cancelOrderHandler,
		completeOrderByScanHandler:      completeOrderByScanHandler,
		addMenuItemHandler:              addMenuItemHandler,
		updateMenuItemHandler:           updateMenuItemHandler,
		removeMenuItemHandler:           removeMenuItemHandler,
		getBucketOrdersHandler:          getBucketOrdersHandler,
		getRecentCompletedOrdersHandler: getRecentCompletedOrdersHandler,
		getNotificationsHandler:         getNotificationsHandler,
		getMenuItemsHandler:             getMenuItemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders/completed/recent", s.GetRecentCompletedOrders)
	api.GET("/orders/:bucket", s.GetBucketOrders)
	api.POST("/orders/:id/prepare", s.PrepareOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/scans", s.CompleteOrderByScan)
	api.GET("/notifications", s.GetNotifications)
	api.GET("/menu-items", s.GetMenuItems)
	api.POST("/menu-items", s.AddMenuItem)
	api.PUT("/menu-items/:id", s.UpdateMenuItem)
	api.DELETE("/menu-items/:id", s.RemoveMenuItem)
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderJSON is the wire shape of an order.
type OrderJSON struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	UserID      string          `json:"userId"`
	Items       []OrderItemJSON `json:"items"`
	TotalCost   float64         `json:"totalCost"`
	Timeslot    string          `json:"timeslot,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OrderItemJSON is one order line on the wire.
type OrderItemJSON struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NotificationJSON is the wire shape of a notification.
type NotificationJSON struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	OrderNumber string    `json:"orderNumber,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

// MenuItemJSON is the wire shape of a menu item.
type MenuItemJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewMenuItemJSON is the request body for creating or updating a menu item.
type NewMenuItemJSON struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

// ScanJSON is the request body for a pickup code scan.
type ScanJSON struct {
	Payload string `json:"payload"`
}

// ScanResultJSON reports whether a scan completed an order.
type ScanResultJSON struct {
	Completed bool `json:"completed"`
}

// CreatedJSON reports the identity of a newly created resource.
type CreatedJSON struct {
	ID string `json:"id"`
}

// GetBucketOrders handles GET /api/v1/orders/:bucket.
func (s *Server) GetBucketOrders(ctx echo.Context) error {
	bucket, err := order.BucketFromString(ctx.Param("bucket"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown bucket: " + ctx.Param("bucket"),
		})
	}

	query, err := queries.NewGetBucketOrdersQuery(bucket)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.getBucketOrdersHandler.Handle(query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSONs(orders))
}

// GetRecentCompletedOrders handles GET /api/v1/orders/completed/recent.
func (s *Server) GetRecentCompletedOrders(ctx echo.Context) error {
	orders, err := s.getRecentCompletedOrdersHandler.Handle(
		queries.NewGetRecentCompletedOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderJSONs(orders))
}

// PrepareOrder handles POST /api/v1/orders/:id/prepare.
func (s *Server) PrepareOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewPrepareOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrderByScan handles POST /api/v1/scans. A payload that does not
// resolve to a prepared order is a successful no-op, reported with
// completed=false.
func (s *Server) CompleteOrderByScan(ctx echo.Context) error {
	var scan ScanJSON
	if err := ctx.Bind(&scan); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewCompleteOrderByScanCommand(scan.Payload)
	err := s.completeOrderByScanHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrOrderNotPrepared) {
		return ctx.JSON(http.StatusOK, ScanResultJSON{Completed: false})
	}
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ScanResultJSON{Completed: true})
}

// GetNotifications handles GET /api/v1/notifications. An optional userId
// query parameter narrows the result to one user.
func (s *Server) GetNotifications(ctx echo.Context) error {
	query := queries.NewGetNotificationsQuery(ctx.QueryParam("userId"))

	notes, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]NotificationJSON, len(notes))
	for i, n := range notes {
		response[i] = NotificationJSON{
			ID:          n.ID.String(),
			UserID:      n.UserID,
			Title:       n.Title,
			Message:     n.Message,
			OrderNumber: n.OrderNumber,
			Timestamp:   n.Timestamp,
			Status:      n.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItems handles GET /api/v1/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(),
		queries.NewGetMenuItemsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]MenuItemJSON, len(items))
	for i, item := range items {
		response[i] = toMenuItemJSON(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/v1/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var body NewMenuItemJSON
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(itemID, body.Name, body.Price,
		body.Stock, body.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid menu item data: " + err.Error(),
		})
	}

	if err = s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedJSON{ID: itemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid menu item id",
		})
	}

	var body NewMenuItemJSON
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, body.Name, body.Price,
		body.Stock, body.Description)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid menu item data: " + err.Error(),
		})
	}

	if err = s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/menu-items/:id.
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid menu item id",
		})
	}

	cmd, err := commands.NewRemoveMenuItemCommand(itemID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.removeMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain and store errors onto HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	var conflict *errs.CommitConflictError
	var unavailable *errs.StoreUnavailableError

	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.As(err, &conflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "The order was already moved by another actor",
		})
	case errors.As(err, &unavailable):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Store is unavailable",
		})
	default:
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
}

func toOrderJSONs(orders []queries.OrderResponse) []OrderJSON {
	response := make([]OrderJSON, len(orders))
	for i, o := range orders {
		items := make([]OrderItemJSON, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItemJSON{Name: item.Name, Quantity: item.Quantity}
		}
		response[i] = OrderJSON{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			UserID:      o.UserID,
			Items:       items,
			TotalCost:   o.TotalCost,
			Timeslot:    o.Timeslot,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		}
	}
	return response
}

func toMenuItemJSON(item queries.MenuItemResponse) MenuItemJSON {
	return MenuItemJSON{
		ID:          item.ID.String(),
		Name:        item.Name,
		Price:       item.Price,
		Stock:       item.Stock,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}
