package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add a product line to an order
// that is still in the created status. As at creation, the selling price is
// part of the request and the acquisition cost comes from the catalog.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add a line to the given order.
// Validates that both identifiers are valid and the quantity is positive. The
// unit price is non-negative by construction of kernel.Money.
func NewAddOrderItemCommand(orderID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	cmd.unitPrice = unitPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to add.
func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the agreed selling price per unit.
func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
