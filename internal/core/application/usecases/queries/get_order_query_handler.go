package queries

import (
	"context"
)

// GetOrderQueryHandler loads one order.
//
// Example:
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // respond 404
//	}
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler reading through reader.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order or *errs.ObjectNotFoundError when it does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(o), nil
}
