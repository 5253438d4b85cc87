package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// InitCancelOrderCommandHandler moves a Paid order to Cancelling.
type InitCancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewInitCancelOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) InitCancelOrderCommandHandler {
	return InitCancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "InitCancelOrderCommandHandler"),
	}
}

func (h *InitCancelOrderCommandHandler) Handle(ctx context.Context, cmd InitCancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.InitCancel(cmd.FailureMessages())
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelling",
		"order_id", cmd.OrderID().String(),
		"failure_messages", cmd.FailureMessages())
	return nil
}
