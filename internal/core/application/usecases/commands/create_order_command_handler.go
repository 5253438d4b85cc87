package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/samber/lo"
)

// CreateOrderCommandHandler admits a new order: it loads the restaurant, checks that
// it is open, binds every line to the catalog product, validates prices, initializes
// the order and stores it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	trackingID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle returns the tracking id of the admitted order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.TrackingID, error) {
	if err := cmd.Validate(); err != nil {
		return order.TrackingID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.TrackingID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return order.TrackingID{}, err
	}

	address, err := kernel.NewStreetAddress(
		kernel.NewUUID(),
		cmd.Address().Street,
		cmd.Address().PostalCode,
		cmd.Address().City,
	)
	if err != nil {
		return order.TrackingID{}, err
	}

	aggregate, err := services.NewOrderPlacer().Place(rest, services.Placement{
		CustomerID:      cmd.CustomerID(),
		DeliveryAddress: address,
		Price:           cmd.Price(),
		Items: lo.Map(cmd.Items(), func(item CreateOrderItem, _ int) services.PlacementItem {
			return services.PlacementItem(item)
		}),
	})
	if err != nil {
		return order.TrackingID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return order.TrackingID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.TrackingID{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", aggregate.ID().String(),
		"tracking_id", aggregate.TrackingID().String(),
		"restaurant_id", rest.ID().String())

	return aggregate.TrackingID(), nil
}
