package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns an ordered
// collection of order lines and tracks the order status.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Must have at least one order line
//   - Status is one of Pending, Paid, Shipped, Canceled and only moves along the state machine
//   - Lines can only be changed while the order is Pending or Paid
//
// An Order is an immutable snapshot. Every mutating method returns a new *Order
// and leaves the receiver unchanged; accessors return copies of internal slices.
type Order struct {
	// id is the opaque identifier of the order
	id string

	// orderLines keeps insertion order; it is never empty
	orderLines []OrderLine

	// status represents the current state in the order lifecycle
	status Status

	createdAt time.Time
	updatedAt time.Time

	// version is the persistence concurrency token. Domain operations carry it
	// over unchanged; repositories compare and bump it.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order. This is the only way to create a valid order
// outside of persistence, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: opaque identifier (must not be empty)
//   - orderLines: at least one line; the slice is copied
//   - status: initial status (the place-order flow always passes Pending)
//   - createdAt: creation time; updatedAt starts equal to it
//
// Example:
//
//	o, err := order.NewOrder(gen.Generate(), []order.OrderLine{line}, order.Pending, time.Now())
//	if errors.Is(err, order.ErrOrderMustHaveAtLeastOneOrderLine) {
//	    // no lines supplied
//	}
func NewOrder(id string, orderLines []OrderLine, status Status, createdAt time.Time) (*Order, error) {
	return RestoreOrder(id, orderLines, status, createdAt, createdAt, 0)
}

// RestoreOrder reconstructs an order from persistent storage, including its
// timestamps and concurrency version.
func RestoreOrder(
	id string,
	orderLines []OrderLine,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderLines(orderLines),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// OrderLines returns a copy of the order lines in insertion order.
func (o *Order) OrderLines() []OrderLine {
	return slices.Clone(o.orderLines)
}

// OrderLine returns the line with the given identifier.
func (o *Order) OrderLine(lineID string) (OrderLine, bool) {
	idx := o.indexOfLine(lineID)
	if idx < 0 {
		return OrderLine{}, false
	}
	return o.orderLines[idx], true
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the persistence concurrency token.
func (o *Order) Version() int {
	return o.version
}

// TotalAmount returns the sum of all line totals.
func (o *Order) TotalAmount() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.orderLines {
		total = total.Add(line.TotalAmount())
	}
	return total
}

// Cancel returns a Canceled copy of the order.
//
// Returns *OrderCannotBeCanceledError when the order is Paid or Shipped.
// Canceling an already Canceled order succeeds.
func (o *Order) Cancel() (*Order, error) {
	status, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	return o.with(o.orderLines, status), nil
}

// UpdateStatus returns a copy of the order in the new status.
//
// Returns *InvalidStatusTransitionError when the state machine forbids the move:
// leaving Canceled or moving to a status other than Canceled that does not rank
// above the current one.
//
// Example:
//
//	paid, err := o.UpdateStatus(order.Paid)
//	var transitionErr *order.InvalidStatusTransitionError
//	if errors.As(err, &transitionErr) {
//	    log.Printf("rejected %s -> %s", transitionErr.From, transitionErr.To)
//	}
func (o *Order) UpdateStatus(newStatus Status) (*Order, error) {
	status, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return nil, err
	}

	return o.with(o.orderLines, status), nil
}

// AddOrderLine returns a copy of the order with the line merged in.
//
// When a line for the same product already exists its quantity is increased by
// the incoming quantity and its unit price is kept; the incoming line's identifier
// and price are discarded. Otherwise the line is appended.
//
// Returns *OrderLineCannotBeModifiedError when the order is Canceled or Shipped.
func (o *Order) AddOrderLine(line OrderLine) (*Order, error) {
	if err := o.ensureLinesCanBeModified(); err != nil {
		return nil, err
	}

	if err := line.Validate(); err != nil {
		return nil, err
	}

	lines := slices.Clone(o.orderLines)

	idx := slices.IndexFunc(lines, func(l OrderLine) bool {
		return l.productID == line.productID
	})
	if idx < 0 {
		return o.with(append(lines, line), o.status), nil
	}

	existing := lines[idx]
	merged, err := existing.UpdateQuantity(existing.quantity + line.quantity)
	if err != nil {
		return nil, fmt.Errorf("merge order line %s: %w", existing.id, err)
	}
	lines[idx] = merged

	return o.with(lines, o.status), nil
}

// RemoveOrderLine returns a copy of the order without the line. An unknown
// lineID leaves the lines unchanged.
//
// Returns *OrderLineCannotBeModifiedError when the order is Canceled or Shipped,
// and ErrOrderMustHaveAtLeastOneOrderLine when the last line would be removed.
func (o *Order) RemoveOrderLine(lineID string) (*Order, error) {
	if err := o.ensureLinesCanBeModified(); err != nil {
		return nil, err
	}

	lines := slices.DeleteFunc(slices.Clone(o.orderLines), func(l OrderLine) bool {
		return l.id == lineID
	})
	if len(lines) == 0 {
		return nil, ErrOrderMustHaveAtLeastOneOrderLine
	}

	return o.with(lines, o.status), nil
}

// UpdateOrderLine returns a copy of the order with the quantity of one line replaced.
//
// Returns *OrderLineCannotBeModifiedError when the order is Canceled or Shipped,
// *OrderLineNotFoundError when lineID does not belong to the order and
// *InvalidQuantityError when newQuantity <= 0.
func (o *Order) UpdateOrderLine(lineID string, newQuantity int) (*Order, error) {
	if err := o.ensureLinesCanBeModified(); err != nil {
		return nil, err
	}

	idx := o.indexOfLine(lineID)
	if idx < 0 {
		return nil, &OrderLineNotFoundError{LineID: lineID}
	}

	updated, err := o.orderLines[idx].UpdateQuantity(newQuantity)
	if err != nil {
		return nil, err
	}

	lines := slices.Clone(o.orderLines)
	lines[idx] = updated

	return o.with(lines, o.status), nil
}

// with builds the next snapshot of the order. lines must not be shared with
// the receiver unless they are left untouched by both.
func (o *Order) with(lines []OrderLine, status Status) *Order {
	return &Order{
		id:         o.id,
		orderLines: slices.Clone(lines),
		status:     status,
		createdAt:  o.createdAt,
		updatedAt:  now(),
		version:    o.version,
		guard:      o.guard,
	}
}

func (o *Order) ensureLinesCanBeModified() error {
	if !o.status.CanModifyLines() {
		return &OrderLineCannotBeModifiedError{Status: o.status}
	}
	return nil
}

func (o *Order) indexOfLine(lineID string) int {
	return slices.IndexFunc(o.orderLines, func(l OrderLine) bool {
		return l.id == lineID
	})
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setOrderLines(orderLines []OrderLine) error {
	if len(orderLines) == 0 {
		return ErrOrderMustHaveAtLeastOneOrderLine
	}

	for _, line := range orderLines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.orderLines = slices.Clone(orderLines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	o.version = version
	return nil
}
