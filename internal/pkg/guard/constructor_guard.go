// Package guard implements the constructor-guard pattern used by commands and
// value objects to ensure they are only created through their designated
// constructor functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied. Validation always fails with a meaningful message even if
// no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct to detect whether the struct was
// properly initialized through its constructor or created as a zero value.
// The guard holds an internal flag that is only set when the object is created
// through NewConstructorGuard, so any zero-value struct fails validation.
//
// Example:
//
//	var ErrOrderNotConstructed = errors.New("Order must be created via NewOrder")
//
//	type Order struct {
//	    customerID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewOrder(customerID string) (Order, error) {
//	    if customerID == "" {
//	        return Order{}, errors.New("customer id is required")
//	    }
//	    return Order{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (o Order) Validate() error {
//	    return o.guard.Validate(ErrOrderNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects, validationError otherwise,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
