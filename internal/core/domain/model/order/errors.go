package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderDomain is the root of all order invariant violations.
	ErrOrderDomain = fmt.Errorf("order: %w", errs.ErrDomainInvariant)

	// ErrInvalidState is returned when an operation is not allowed in the current
	// lifecycle state.
	ErrInvalidState = fmt.Errorf("%w: invalid state", ErrOrderDomain)

	// ErrInvalidTotalPrice is returned when the total price is missing or not positive.
	ErrInvalidTotalPrice = fmt.Errorf("%w: invalid total price", ErrOrderDomain)

	// ErrInvalidItemPrice is returned when an item disagrees with its product price
	// or with its own subtotal.
	ErrInvalidItemPrice = fmt.Errorf("%w: invalid item price", ErrOrderDomain)

	// ErrPriceMismatch is returned when the item subtotals do not add up to the
	// total price.
	ErrPriceMismatch = fmt.Errorf("%w: price mismatch", ErrOrderDomain)
)

// DomainError carries the kind of an order invariant violation together with a
// human readable message. Kind is one of the Err* sentinels of this package, so
//
//	errors.Is(err, order.ErrPriceMismatch)  // the exact kind
//	errors.Is(err, order.ErrOrderDomain)    // any order violation
//	errors.Is(err, errs.ErrDomainInvariant) // any domain violation
//
// all hold for a price mismatch.
type DomainError struct {
	Kind    error
	Message string
}

func newDomainError(kind error, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}
