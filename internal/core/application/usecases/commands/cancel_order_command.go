package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a pending order, or finishes cancelling one whose
// payment was rolled back.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	failureMessages []string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.OrderID, failureMessages []string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID:         orderID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c CancelOrderCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
