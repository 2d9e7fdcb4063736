// Package servers holds the HTTP contract of the ordering API: the embedded
// OpenAPI document, its request and response types and the echo bindings.
package servers

import (
	"time"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// NewOrderLine defines model for NewOrderLine.
type NewOrderLine struct {
	ProductId string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt   time.Time   `json:"createdAt"`
	Identifier  string      `json:"identifier"`
	OrderLines  []OrderLine `json:"orderLines"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	Identifier  string  `json:"identifier"`
	ProductId   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"totalAmount"`
	UnitPrice   float64 `json:"unitPrice"`
}

// OrderList defines model for OrderList.
type OrderList struct {
	Orders []Order `json:"orders"`
}

// PlaceOrderRequest defines model for PlaceOrderRequest.
type PlaceOrderRequest struct {
	OrderLines []NewOrderLine `json:"orderLines"`
}

// PlaceOrderResponse defines model for PlaceOrderResponse.
type PlaceOrderResponse struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

// UpdateOrderLineRequest defines model for UpdateOrderLineRequest.
type UpdateOrderLineRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateOrderStatusRequest defines model for UpdateOrderStatusRequest.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// LineId defines model for LineId.
type LineId = string

// OrderId defines model for OrderId.
type OrderId = string

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = PlaceOrderRequest

// AddOrderLineJSONRequestBody defines body for AddOrderLine for application/json ContentType.
type AddOrderLineJSONRequestBody = NewOrderLine

// UpdateOrderLineJSONRequestBody defines body for UpdateOrderLine for application/json ContentType.
type UpdateOrderLineJSONRequestBody = UpdateOrderLineRequest

// UpdateOrderStatusJSONRequestBody defines body for UpdateOrderStatus for application/json ContentType.
type UpdateOrderStatusJSONRequestBody = UpdateOrderStatusRequest
