package http

import (
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	addOrderLineHandler      commands.AddOrderLineCommandHandler
	updateOrderLineHandler   commands.UpdateOrderLineCommandHandler
	removeOrderLineHandler   commands.RemoveOrderLineCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	AddOrderLine      commands.AddOrderLineCommandHandler
	UpdateOrderLine   commands.UpdateOrderLineCommandHandler
	RemoveOrderLine   commands.RemoveOrderLineCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		placeOrderHandler:        handlers.PlaceOrder,
		cancelOrderHandler:       handlers.CancelOrder,
		addOrderLineHandler:      handlers.AddOrderLine,
		updateOrderLineHandler:   handlers.UpdateOrderLine,
		removeOrderLineHandler:   handlers.RemoveOrderLine,
		updateOrderStatusHandler: handlers.UpdateOrderStatus,
		getOrderHandler:          handlers.GetOrder,
		listOrdersHandler:        handlers.ListOrders,
		logger:                   logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve orders")
	}

	response := servers.OrderList{Orders: make([]servers.Order, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResource(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.PlaceOrderLine, 0, len(body.OrderLines))
	for _, line := range body.OrderLines {
		lines = append(lines, commands.PlaceOrderLine{
			ProductID: line.ProductId,
			Quantity:  line.Quantity,
			UnitPrice: kernel.MoneyFromFloat(line.UnitPrice),
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(lines)
	if err != nil {
		return s.respondError(ctx, err, "Failed to place order")
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, servers.PlaceOrderResponse{
		Id:      orderID,
		Message: "Order placed successfully",
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve order")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderResource(o))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewCancelOrderCommand(orderId)
	if err != nil {
		return s.respondError(ctx, err, "Failed to cancel order")
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to cancel order")
	}

	return respondMessage(ctx, http.StatusOK, "Order canceled successfully")
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update order status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderId, status)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update order status")
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to update order status")
	}

	return respondMessage(ctx, http.StatusOK, "Order status updated successfully")
}

// AddOrderLine handles POST /api/v1/orders/{orderId}/lines.
func (s *Server) AddOrderLine(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AddOrderLineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderLineCommand(
		orderId,
		body.ProductId,
		body.Quantity,
		kernel.MoneyFromFloat(body.UnitPrice),
	)
	if err != nil {
		return s.respondError(ctx, err, "Failed to add order line")
	}

	if err = s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to add order line")
	}

	return respondMessage(ctx, http.StatusCreated, "Order line added successfully")
}

// UpdateOrderLine handles PUT /api/v1/orders/{orderId}/lines/{lineId}.
func (s *Server) UpdateOrderLine(ctx echo.Context, orderId servers.OrderId, lineId servers.LineId) error {
	var body servers.UpdateOrderLineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderLineCommand(orderId, lineId, body.Quantity)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update order line")
	}

	if err = s.updateOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to update order line")
	}

	return respondMessage(ctx, http.StatusOK, "Order line updated successfully")
}

// RemoveOrderLine handles DELETE /api/v1/orders/{orderId}/lines/{lineId}.
func (s *Server) RemoveOrderLine(ctx echo.Context, orderId servers.OrderId, lineId servers.LineId) error {
	cmd, err := commands.NewRemoveOrderLineCommand(orderId, lineId)
	if err != nil {
		return s.respondError(ctx, err, "Failed to remove order line")
	}

	if err = s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to remove order line")
	}

	return respondMessage(ctx, http.StatusOK, "Order line removed successfully")
}

func toOrderResource(o queries.OrderResponse) servers.Order {
	lines := make([]servers.OrderLine, 0, len(o.OrderLines))
	for _, line := range o.OrderLines {
		lines = append(lines, servers.OrderLine{
			Identifier:  line.ID,
			ProductId:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.Float64(),
			TotalAmount: line.TotalAmount.Float64(),
		})
	}

	return servers.Order{
		Identifier:  o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount.Float64(),
		OrderLines:  lines,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
