// Package guard provides ConstructorGuard, a marker embedded in value objects and
// entities to tell instances built by their constructors apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// built by its constructor and the caller passed no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the surrounding object was created through its
// designated constructor. The zero value means "not constructed", which lets a
// zero-value Money or Order be detected and rejected.
//
// Example:
//
//	type Money struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount decimal.Decimal) Money {
//	    return Money{amount: amount.RoundBank(2), guard: guard.NewConstructorGuard()}
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// IsConstructed reports whether the guard was created by NewConstructorGuard.
func (g ConstructorGuard) IsConstructed() bool {
	return g.isConstructed
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
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
