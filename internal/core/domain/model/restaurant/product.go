package restaurant

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

type productTag struct{}

// ProductID identifies a product of the catalog.
type ProductID = kernel.TypedID[productTag]

func NewProductID() ProductID {
	return kernel.NewTypedID[productTag]()
}

func ProductIDFromString(s string) (ProductID, error) {
	return kernel.TypedIDFromString[productTag](s)
}

func ProductIDFromUUID(id kernel.UUID) (ProductID, error) {
	return kernel.TypedIDFromUUID[productTag](id)
}

var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("product must be created via NewProduct")

// Product is an immutable catalog entry with its canonical price.
type Product struct {
	entity kernel.BaseEntity[ProductID]
	name   string
	price  kernel.Money
	guard  guard.ConstructorGuard
}

func NewProduct(id ProductID, name string, price kernel.Money) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() ProductID {
	return p.entity.ID()
}

func (p *Product) Name() string {
	return p.name
}

// Price is the canonical price order lines must match exactly.
func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.entity.IsEqual(other.entity)
}

func (p *Product) setID(id ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.entity.SetID(id)
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
