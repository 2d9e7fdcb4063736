// Package order provides the Order aggregate of the ordering service.
//
// The package includes:
//   - Order: the aggregate root owning an ordered collection of order lines and a status
//   - OrderLine: an immutable product line with a quantity and a unit price
//   - Status: the order lifecycle state machine
//
// Key business rules:
//   - An order always has at least one order line
//   - Order line quantities are always greater than 0
//   - Status moves forward along Pending -> Paid -> Shipped; UpdateStatus may move any
//     non-Canceled order to Canceled, while Cancel only accepts Pending orders
//   - Order lines can only be changed while the order is Pending or Paid
//
// Orders and order lines are immutable snapshots: every mutating method returns a
// new value and leaves the receiver untouched, so readers holding a previously
// loaded order never observe a partial update. Failures are returned as typed
// errors (see errors.go) that callers inspect with errors.Is and errors.As.
package order
