package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all orders in creation order
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// Place a new order in PENDING status
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Get an order by id
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Cancel a PENDING order
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Add a product to an order, merging quantities of an existing line
	// (POST /api/v1/orders/{orderId}/lines)
	AddOrderLine(ctx echo.Context, orderId OrderId) error
	// Remove a line from an order
	// (DELETE /api/v1/orders/{orderId}/lines/{lineId})
	RemoveOrderLine(ctx echo.Context, orderId OrderId, lineId LineId) error
	// Change the quantity of an order line
	// (PUT /api/v1/orders/{orderId}/lines/{lineId})
	UpdateOrderLine(ctx echo.Context, orderId OrderId, lineId LineId) error
	// Move an order to another status
	// (PUT /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.CancelOrder(ctx, orderId)
}

// AddOrderLine converts echo context to params.
func (w *ServerInterfaceWrapper) AddOrderLine(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.AddOrderLine(ctx, orderId)
}

// RemoveOrderLine converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveOrderLine(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	lineId, err := bindPathParameter(ctx, "lineId")
	if err != nil {
		return err
	}

	return w.Handler.RemoveOrderLine(ctx, orderId, lineId)
}

// UpdateOrderLine converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderLine(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	lineId, err := bindPathParameter(ctx, "lineId")
	if err != nil {
		return err
	}

	return w.Handler.UpdateOrderLine(ctx, orderId, lineId)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindPathParameter(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func bindPathParameter(ctx echo.Context, name string) (string, error) {
	var value string

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return value, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// needed to register the handlers.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, and prepends BaseURL to
// the paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/lines", wrapper.AddOrderLine)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/lines/:lineId", wrapper.RemoveOrderLine)
	router.PUT(baseURL+"/api/v1/orders/:orderId/lines/:lineId", wrapper.UpdateOrderLine)
	router.PUT(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
}
