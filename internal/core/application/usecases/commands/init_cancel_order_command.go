package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrInitCancelOrderCommandIsNotConstructed = errors.New(
	"InitCancelOrderCommand must be created via NewInitCancelOrderCommand constructor",
)

// InitCancelOrderCommand starts cancelling a paid order, for example after the
// restaurant rejected it. The payment has to be rolled back before CancelOrderCommand.
type InitCancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	failureMessages []string

	guard guard.ConstructorGuard
}

func NewInitCancelOrderCommand(orderID kernel.OrderID, failureMessages []string) (InitCancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return InitCancelOrderCommand{}, err
	}

	return InitCancelOrderCommand{
		orderID:         orderID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c InitCancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrInitCancelOrderCommandIsNotConstructed)
}

func (c InitCancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c InitCancelOrderCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
