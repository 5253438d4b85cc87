package http

import "github.com/google/uuid"

// CreateOrderRequest is the body of POST /orders. Amounts are decimal strings.
type CreateOrderRequest struct {
	CustomerID   uuid.UUID          `json:"customerId"`
	RestaurantID uuid.UUID          `json:"restaurantId"`
	Address      AddressRequest     `json:"address"`
	Price        string             `json:"price" example:"17.50" pattern:"^-?[0-9]{1,8}(\\.[0-9]{1,8})?$" maxLength:"18"`
	Items        []OrderItemRequest `json:"items"`
}

type AddressRequest struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// OrderItemRequest is one order line. SubTotal may be omitted.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price" example:"5.00" pattern:"^-?[0-9]{1,8}(\\.[0-9]{1,8})?$" maxLength:"18"`
	SubTotal  string    `json:"subTotal,omitempty" example:"10.00" pattern:"^-?[0-9]{1,8}(\\.[0-9]{1,8})?$" maxLength:"18"`
}

type CreateOrderResponse struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

type FailureMessagesRequest struct {
	FailureMessages []string `json:"failureMessages"`
}

type OrderStatusResponse struct {
	TrackingID      string   `json:"trackingId"`
	Status          string   `json:"status"`
	FailureMessages []string `json:"failureMessages"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
