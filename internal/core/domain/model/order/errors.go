package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

var (
	// ErrInvalidQuantity is wrapped by InvalidQuantityError.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrOrderMustHaveAtLeastOneOrderLine is returned when constructing an order
	// without lines or when removing its last line.
	ErrOrderMustHaveAtLeastOneOrderLine = errors.New("an order must have at least one order line")

	// ErrOrderCannotBeCanceled is wrapped by OrderCannotBeCanceledError.
	ErrOrderCannotBeCanceled = errors.New("order cannot be canceled")

	// ErrOrderLineCannotBeModified is wrapped by OrderLineCannotBeModifiedError.
	ErrOrderLineCannotBeModified = errors.New("order line cannot be modified")

	// ErrInvalidStatusTransition is wrapped by InvalidStatusTransitionError.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrOrderLineNotFound is wrapped by OrderLineNotFoundError.
	ErrOrderLineNotFound = errors.New("order line not found")
)

// InvalidQuantityError reports a quantity that is not greater than 0.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0, got %d", e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// OrderCannotBeCanceledError reports a cancel attempt on a Paid or Shipped order.
type OrderCannotBeCanceledError struct {
	Status Status
}

func (e *OrderCannotBeCanceledError) Error() string {
	return fmt.Sprintf("cannot cancel order with status %s", e.Status)
}

func (e *OrderCannotBeCanceledError) Unwrap() error {
	return ErrOrderCannotBeCanceled
}

// OrderLineCannotBeModifiedError reports a line change on a Canceled or Shipped order.
type OrderLineCannotBeModifiedError struct {
	Status Status
}

func (e *OrderLineCannotBeModifiedError) Error() string {
	return fmt.Sprintf("cannot modify order line when order status is %s", e.Status)
}

func (e *OrderLineCannotBeModifiedError) Unwrap() error {
	return ErrOrderLineCannotBeModified
}

// InvalidStatusTransitionError reports a status change the state machine forbids.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// OrderLineNotFoundError reports an order line identifier that does not belong
// to the order. It matches both ErrOrderLineNotFound and errs.ErrObjectNotFound.
type OrderLineNotFoundError struct {
	LineID string
}

func (e *OrderLineNotFoundError) Error() string {
	return fmt.Sprintf("order line with id %s not found", e.LineID)
}

func (e *OrderLineNotFoundError) Unwrap() []error {
	return []error{ErrOrderLineNotFound, errs.ErrObjectNotFound}
}
