// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table. Items live in order_items.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	TrackingID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	DeliveryAddress AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status          string          `gorm:"type:varchar(16);index;not null"`
	FailureMessages pq.StringArray  `gorm:"type:text[]"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address embedded in the orders table.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid"`
	Street     string
	PostalCode string
	City       string
}

// OrderItemDTO is a row of order_items. The product columns are a snapshot of the
// catalog product at the time the order was placed.
type OrderItemDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"not null"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity     int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SubTotal     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate with its items to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.DeliveryAddress()

	return OrderDTO{
		ID:           aggregate.ID().UUID().Value(),
		CustomerID:   aggregate.CustomerID().UUID().Value(),
		RestaurantID: aggregate.RestaurantID().UUID().Value(),
		TrackingID:   aggregate.TrackingID().UUID().Value(),
		DeliveryAddress: AddressDTO{
			ID:         address.ID().Value(),
			Street:     address.Street(),
			PostalCode: address.PostalCode(),
			City:       address.City(),
		},
		Price:           aggregate.Price().Amount(),
		Status:          aggregate.Status().String(),
		FailureMessages: pq.StringArray(aggregate.FailureMessages()),
		Items: lo.Map(aggregate.Items(), func(item *order.OrderItem, _ int) OrderItemDTO {
			return OrderItemDTO{
				ID:           int64(item.ID()),
				OrderID:      item.OrderID().UUID().Value(),
				ProductID:    item.Product().ID().UUID().Value(),
				ProductName:  item.Product().Name(),
				ProductPrice: item.Product().Price().Amount(),
				Quantity:     item.Quantity(),
				Price:        item.Price().Amount(),
				SubTotal:     item.SubTotal().Amount(),
			}
		}),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := fromUUID(dto.ID, kernel.OrderIDFromUUID)
	if err != nil {
		return nil, err
	}
	customerID, err := fromUUID(dto.CustomerID, kernel.CustomerIDFromUUID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := fromUUID(dto.RestaurantID, kernel.RestaurantIDFromUUID)
	if err != nil {
		return nil, err
	}
	trackingID, err := fromUUID(dto.TrackingID, order.TrackingIDFromUUID)
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.DeliveryAddress.ID[:])
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewStreetAddress(
		addressID,
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.PostalCode,
		dto.DeliveryAddress.City,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreParams{
		Params: order.Params{
			CustomerID:      customerID,
			RestaurantID:    restaurantID,
			DeliveryAddress: address,
			Price:           kernel.NewMoney(dto.Price),
			Items:           items,
		},
		ID:              id,
		TrackingID:      trackingID,
		Status:          status,
		FailureMessages: []string(dto.FailureMessages),
	})
}

func itemToDomain(orderID kernel.OrderID, dto OrderItemDTO) (*order.OrderItem, error) {
	productID, err := fromUUID(dto.ProductID, restaurant.ProductIDFromUUID)
	if err != nil {
		return nil, err
	}

	product, err := restaurant.NewProduct(productID, dto.ProductName, kernel.NewMoney(dto.ProductPrice))
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderItem(order.ItemID(dto.ID), orderID, order.ItemParams{
		Product:  product,
		Quantity: dto.Quantity,
		Price:    kernel.NewMoney(dto.Price),
		SubTotal: kernel.NewMoney(dto.SubTotal),
	})
}

// fromUUID converts a column value into one of the typed identifiers.
func fromUUID[ID any](raw uuid.UUID, build func(kernel.UUID) (ID, error)) (ID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		var zero ID
		return zero, err
	}
	return build(id)
}
