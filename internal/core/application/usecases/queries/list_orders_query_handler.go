package queries

import (
	"context"
)

// ListOrdersQueryHandler returns all orders in creation order.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

// NewListOrdersQueryHandler creates a handler reading through reader.
func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns every order; an empty store yields an empty, non-nil slice.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, newOrderResponse(o))
	}

	return responses, nil
}
