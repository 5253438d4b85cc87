package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrStreetAddressIsNotConstructed is returned for a zero-value StreetAddress.
var ErrStreetAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"street address must be created via NewStreetAddress")

// StreetAddress is the structured delivery address of an order.
type StreetAddress struct { //nolint:recvcheck //using for validation
	id         UUID
	street     string
	postalCode string
	city       string
	guard      guard.ConstructorGuard
}

// NewStreetAddress validates and builds an address. Street, postal code and city are
// trimmed and must not be blank. All violations are reported together.
func NewStreetAddress(id UUID, street, postalCode, city string) (StreetAddress, error) {
	address := StreetAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setID(id),
		address.setStreet(street),
		address.setPostalCode(postalCode),
		address.setCity(city),
	); err != nil {
		return StreetAddress{}, err
	}

	return address, nil
}

func (a StreetAddress) Validate() error {
	return a.guard.Validate(ErrStreetAddressIsNotConstructed)
}

func (a StreetAddress) ID() UUID {
	return a.id
}

func (a StreetAddress) Street() string {
	return a.street
}

func (a StreetAddress) PostalCode() string {
	return a.postalCode
}

func (a StreetAddress) City() string {
	return a.city
}

// IsEqual compares the address lines; the id only tracks the stored row.
func (a StreetAddress) IsEqual(other StreetAddress) bool {
	return a.street == other.street && a.postalCode == other.postalCode && a.city == other.city
}

func (a StreetAddress) String() string {
	return fmt.Sprintf("%s, %s %s", a.street, a.postalCode, a.city)
}

func (a *StreetAddress) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *StreetAddress) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *StreetAddress) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *StreetAddress) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
