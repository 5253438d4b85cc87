package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler moves a Paid order to Approved.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "ApproveOrderCommandHandler"),
	}
}

func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Approve); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order approved", "order_id", cmd.OrderID().String())
	return nil
}
