// Package queries contains read-only operations served directly from the database,
// bypassing the aggregates.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
)

// GetOrderStatusQuery looks an order up by the tracking id handed to the customer.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderStatusQueryHandler(db)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", response.TrackingID, response.Status)
type GetOrderStatusQuery struct {
	trackingID order.TrackingID

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(trackingID order.TrackingID) (GetOrderStatusQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) TrackingID() order.TrackingID {
	return q.trackingID
}

// GetOrderStatusQueryResponse is what a customer sees when tracking an order.
type GetOrderStatusQueryResponse struct {
	TrackingID      order.TrackingID
	Status          order.Status
	FailureMessages []string
}
