package ports

// IdentifierGenerator produces unique opaque identifiers for orders and order lines.
type IdentifierGenerator interface {
	Generate() string
}
