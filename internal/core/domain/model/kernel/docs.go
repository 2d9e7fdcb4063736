// Package kernel provides core domain primitives shared by the ordering domain model.
//
// The package includes:
//   - Money: an immutable decimal amount used for unit prices and totals
//   - UUIDGenerator: the default source of opaque identifiers for orders and order lines
//
// Money arithmetic is exact (backed by github.com/shopspring/decimal), so totals
// such as 2 x 49.99 + 29.99 are always 129.97 and never a float approximation.
package kernel
