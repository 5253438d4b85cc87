package commands

import (
	"context"
	"log/slog"
)

// CancelExpiredOrdersCommandHandler cancels unpaid orders in one transaction. It is
// driven by the payment timeout job.
type CancelExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCancelExpiredOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CancelExpiredOrdersCommandHandler {
	return CancelExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CancelExpiredOrdersCommandHandler"),
	}
}

// Handle returns the number of cancelled orders.
func (h *CancelExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd CancelExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	expired, err := orderRepo.GetAllPendingCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if len(expired) == 0 {
		return 0, nil
	}

	for _, o := range expired {
		if err = o.Cancel([]string{PaymentTimeoutMessage}); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "expired orders cancelled", "count", len(expired), "cutoff", cmd.Cutoff())
	return len(expired), nil
}
