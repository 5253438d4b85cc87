// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
// The order service reads the catalog; it is written by the catalog owner or by seeding.
package restaurantrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Active   bool         `gorm:"not null;default:true"`
	Products []ProductDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ProductDTO is a product row linked to its restaurant.
type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	restaurantID := aggregate.ID().UUID().Value()

	return RestaurantDTO{
		ID:     restaurantID,
		Active: aggregate.IsActive(),
		Products: lo.Map(aggregate.Products(), func(product *restaurant.Product, _ int) ProductDTO {
			return ProductDTO{
				ID:           product.ID().UUID().Value(),
				RestaurantID: restaurantID,
				Name:         product.Name(),
				Price:        product.Price().Amount(),
			}
		}),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	rawID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	id, err := kernel.RestaurantIDFromUUID(rawID)
	if err != nil {
		return nil, err
	}

	products := make([]*restaurant.Product, 0, len(dto.Products))
	for _, productDTO := range dto.Products {
		rawProductID, err := kernel.UUIDFromBytes(productDTO.ID[:])
		if err != nil {
			return nil, err
		}
		productID, err := restaurant.ProductIDFromUUID(rawProductID)
		if err != nil {
			return nil, err
		}

		product, err := restaurant.NewProduct(productID, productDTO.Name, kernel.NewMoney(productDTO.Price))
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return restaurant.NewRestaurant(id, products, dto.Active)
}
