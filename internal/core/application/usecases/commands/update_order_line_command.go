package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderLineCommandIsNotConstructed = errors.New(
		"UpdateOrderLineCommand must be created via NewUpdateOrderLineCommand constructor",
	)
)

// UpdateOrderLineCommand requests replacing the quantity of one order line.
type UpdateOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID  string
	lineID   string
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateOrderLineCommand creates an update-line command. The quantity is
// checked by the order domain.
func NewUpdateOrderLineCommand(orderID, lineID string, quantity int) (UpdateOrderLineCommand, error) {
	cmd := UpdateOrderLineCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
	); err != nil {
		return UpdateOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderLineCommandIsNotConstructed)
}

func (c UpdateOrderLineCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderLineCommand) LineID() string {
	return c.lineID
}

func (c UpdateOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateOrderLineCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderLineCommand) setLineID(lineID string) error {
	if lineID == "" {
		return errs.NewValueIsRequiredError("order line id")
	}

	c.lineID = lineID
	return nil
}
