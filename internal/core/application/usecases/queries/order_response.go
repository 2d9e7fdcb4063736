package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order.
//
// Example:
//
//	resp, _ := handler.Handle(ctx, query)
//	fmt.Printf("%s %s total=%s lines=%d\n", resp.ID, resp.Status, resp.TotalAmount, len(resp.OrderLines))
type OrderResponse struct {
	ID          string
	Status      string
	TotalAmount kernel.Money
	OrderLines  []OrderLineResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLineResponse is the read model of an order line.
type OrderLineResponse struct {
	ID          string
	ProductID   string
	Quantity    int
	UnitPrice   kernel.Money
	TotalAmount kernel.Money
}

func newOrderResponse(o *order.Order) OrderResponse {
	lines := o.OrderLines()
	lineResponses := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, OrderLineResponse{
			ID:          line.ID(),
			ProductID:   line.ProductID(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			TotalAmount: line.TotalAmount(),
		})
	}

	return OrderResponse{
		ID:          o.ID(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount(),
		OrderLines:  lineResponses,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
