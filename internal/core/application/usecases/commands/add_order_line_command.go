package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
)

// AddOrderLineCommand requests adding a product to an existing order. When the
// order already contains the product, the quantities are merged.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	productID string
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates an add-line command.
// Validates the identifiers and that the unit price is not negative.
func NewAddOrderLineCommand(
	orderID string,
	productID string,
	quantity int,
	unitPrice kernel.Money,
) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLine(productID, unitPrice),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

func (c AddOrderLineCommand) OrderID() string {
	return c.orderID
}

func (c AddOrderLineCommand) ProductID() string {
	return c.productID
}

func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c AddOrderLineCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddOrderLineCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setLine(productID string, unitPrice kernel.Money) error {
	if err := validateRequestedLine(productID, unitPrice); err != nil {
		return err
	}

	c.productID = productID
	c.unitPrice = unitPrice
	return nil
}
