package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand represents a request to add inventory for an existing
// catalog product.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to restock the given product.
// Validates that the product ID is valid and the quantity is positive.
func NewRestockProductCommand(productID kernel.UUID, quantity int) (RestockProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return RestockProductCommand{}, err
	}
	if quantity <= 0 {
		return RestockProductCommand{}, ErrQuantityIsInvalid
	}

	return RestockProductCommand{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to restock.
func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add to stock.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}
