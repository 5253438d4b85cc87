package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads the tracking view of an order from the orders table.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order tracking queries.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no order has the tracking id.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var (
		trackingID      uuid.UUID
		status          string
		failureMessages pq.StringArray
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().UUID().Value()).Row()

	if err := row.Scan(&trackingID, &status, &failureMessages); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("trackingID", query.TrackingID().String())
		}
		return GetOrderStatusQueryResponse{}, err
	}

	rawID, err := kernel.UUIDFromBytes(trackingID[:])
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	id, err := order.TrackingIDFromUUID(rawID)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	orderStatus, err := order.ParseStatus(status)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		TrackingID:      id,
		Status:          orderStatus,
		FailureMessages: []string(failureMessages),
	}, nil
}
