package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
		"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
	)
)

// RemoveOrderLineCommand requests removing one line from an order.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID string
	lineID  string

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a remove-line command.
func NewRemoveOrderLineCommand(orderID, lineID string) (RemoveOrderLineCommand, error) {
	cmd := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

func (c RemoveOrderLineCommand) OrderID() string {
	return c.orderID
}

func (c RemoveOrderLineCommand) LineID() string {
	return c.lineID
}

func (c *RemoveOrderLineCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderLineCommand) setLineID(lineID string) error {
	if lineID == "" {
		return errs.NewValueIsRequiredError("order line id")
	}

	c.lineID = lineID
	return nil
}
