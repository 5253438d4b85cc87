package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler moves a Pending or Cancelling order to Cancelled.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CancelOrderCommandHandler"),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel(cmd.FailureMessages())
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelled",
		"order_id", cmd.OrderID().String(),
		"failure_messages", cmd.FailureMessages())
	return nil
}
