package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine was not created through
// NewOrderLine or RestoreOrderLine.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// now is the clock used to refresh updatedAt on mutations.
var now = func() time.Time {
	return time.Now().UTC()
}

// OrderLine is one product entry of an order. It is an immutable value:
// UpdateQuantity returns a new line and the receiver keeps its state.
//
// Invariants:
//   - quantity is greater than 0 for every constructed line
//   - id, productID and createdAt never change
//
// The unit price is accepted as given; price policy belongs to the caller.
type OrderLine struct { //nolint:recvcheck //using for validation
	// id is the opaque identifier of the line
	id string

	// productID identifies the ordered product; lines of one order are merged by it
	productID string

	// quantity is the number of ordered units (always > 0)
	quantity int

	// unitPrice is the price of a single unit
	unitPrice kernel.Money

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrderLine creates a new order line. updatedAt starts equal to createdAt.
//
// Example:
//
//	line, err := order.NewOrderLine(gen.Generate(), "PROD-001", 2, kernel.MoneyFromFloat(49.99), time.Now())
//	if err != nil {
//	    // quantity <= 0 yields an *InvalidQuantityError
//	}
func NewOrderLine(
	id string,
	productID string,
	quantity int,
	unitPrice kernel.Money,
	createdAt time.Time,
) (OrderLine, error) {
	return RestoreOrderLine(id, productID, quantity, unitPrice, createdAt, createdAt)
}

// RestoreOrderLine reconstructs an order line from persistent storage, applying
// the same validation as NewOrderLine.
func RestoreOrderLine(
	id string,
	productID string,
	quantity int,
	unitPrice kernel.Money,
	createdAt time.Time,
	updatedAt time.Time,
) (OrderLine, error) {
	line := OrderLine{
		unitPrice: unitPrice,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through its constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ID returns the line identifier.
func (l OrderLine) ID() string {
	return l.id
}

// ProductID returns the product identifier.
func (l OrderLine) ProductID() string {
	return l.productID
}

// Quantity returns the number of ordered units.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price of a single unit.
func (l OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// CreatedAt returns the creation time of the line.
func (l OrderLine) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns the time of the last quantity change.
func (l OrderLine) UpdatedAt() time.Time {
	return l.updatedAt
}

// TotalAmount returns quantity x unit price.
func (l OrderLine) TotalAmount() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}

// UpdateQuantity returns a copy of the line with the new quantity and a
// refreshed updatedAt. It fails with *InvalidQuantityError when newQuantity <= 0.
func (l OrderLine) UpdateQuantity(newQuantity int) (OrderLine, error) {
	updated := l
	if err := updated.setQuantity(newQuantity); err != nil {
		return OrderLine{}, err
	}

	updated.updatedAt = now()
	return updated, nil
}

func (l *OrderLine) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order line id")
	}
	l.id = id
	return nil
}

func (l *OrderLine) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return &InvalidQuantityError{Quantity: quantity}
	}
	l.quantity = quantity
	return nil
}
