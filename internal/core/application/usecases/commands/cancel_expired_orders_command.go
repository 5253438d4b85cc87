package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// PaymentTimeoutMessage is the failure message recorded on orders cancelled because
// their payment did not arrive in time.
const PaymentTimeoutMessage = "payment timeout"

var ErrCancelExpiredOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredOrdersCommand must be created via NewCancelExpiredOrdersCommand constructor",
)

// CancelExpiredOrdersCommand cancels every Pending order created before cutoff.
//
// Example:
//
//	cmd, _ := NewCancelExpiredOrdersCommand(time.Now().Add(-15 * time.Minute))
//	cancelled, err := handler.Handle(ctx, cmd)
type CancelExpiredOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewCancelExpiredOrdersCommand(cutoff time.Time) (CancelExpiredOrdersCommand, error) {
	if cutoff.IsZero() {
		return CancelExpiredOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CancelExpiredOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CancelExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredOrdersCommandIsNotConstructed)
}

func (c CancelExpiredOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
