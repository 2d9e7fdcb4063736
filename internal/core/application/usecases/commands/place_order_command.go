package commands

import (
	"errors"
	"fmt"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderLine is one requested product of a new order.
type PlaceOrderLine struct {
	ProductID string
	Quantity  int
	UnitPrice kernel.Money
}

// PlaceOrderCommand represents a request to place a new order in Pending status.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand([]PlaceOrderLine{
//	    {ProductID: "PROD-001", Quantity: 2, UnitPrice: kernel.MoneyFromFloat(49.99)},
//	    {ProductID: "PROD-002", Quantity: 1, UnitPrice: kernel.MoneyFromFloat(29.99)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, idGenerator)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	lines []PlaceOrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order with the given lines.
// Requires at least one line, a product id on every line and non-negative unit prices.
// Quantities are checked by the order domain.
func NewPlaceOrderCommand(lines []PlaceOrderLine) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLines(lines); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Lines returns a copy of the requested lines.
func (c PlaceOrderCommand) Lines() []PlaceOrderLine {
	return slices.Clone(c.lines)
}

func (c *PlaceOrderCommand) setLines(lines []PlaceOrderLine) error {
	if len(lines) == 0 {
		return order.ErrOrderMustHaveAtLeastOneOrderLine
	}

	validationErrs := make([]error, 0, len(lines))
	for i, line := range lines {
		if err := validateRequestedLine(line.ProductID, line.UnitPrice); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("order line %d: %w", i, err))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	c.lines = slices.Clone(lines)
	return nil
}

// validateRequestedLine holds the checks the domain leaves to the caller.
func validateRequestedLine(productID string, unitPrice kernel.Money) error {
	var productErr, priceErr error
	if productID == "" {
		productErr = errs.NewValueIsRequiredError("product id")
	}
	if unitPrice.IsNegative() {
		priceErr = errs.NewValueIsOutOfRangeError("unit price", unitPrice.String(), 0, "unbounded")
	}
	return errors.Join(productErr, priceErr)
}
