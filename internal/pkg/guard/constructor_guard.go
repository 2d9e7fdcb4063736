// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands to tell values built by their constructors apart from
// zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was created through its
// constructor. The zero value is "not constructed".
//
// Example:
//
//	var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine")
//
//	type OrderLine struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func (l OrderLine) Validate() error {
//	    return l.guard.Validate(ErrOrderLineIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from
// constructors only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
