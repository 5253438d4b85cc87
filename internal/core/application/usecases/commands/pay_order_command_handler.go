package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// PayOrderCommandHandler moves a Pending order to Paid.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewPayOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "PayOrderCommandHandler"),
	}
}

func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Pay); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order paid", "order_id", cmd.OrderID().String())
	return nil
}
