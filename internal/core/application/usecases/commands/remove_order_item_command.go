package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to remove a product line from
// an order that is still in the created status.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove a line from the given order.
// Validates that both identifiers are valid.
func NewRemoveOrderItemCommand(orderID, productID kernel.UUID) (RemoveOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), productID.Validate()); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return RemoveOrderItemCommand{
		orderID:   orderID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product line to remove.
func (c RemoveOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}
