package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrSkuIsRequired  = errors.New("sku is required")
	ErrNameIsRequired = errors.New("name is required")
	ErrStockIsInvalid = errors.New("stock must not be negative")
)

// CreateProductCommand represents a request to add a new product to the catalog.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("5.00")
//	cost, _ := kernel.NewMoneyFromString("3.00")
//	cmd, err := NewCreateProductCommand(kernel.NewUUID(), "SKU-001", "Widget", price, cost, 100)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	sku       string
	name      string
	price     kernel.Money
	costPrice kernel.Money
	stock     int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new catalog product.
// Validates that the product ID is valid, SKU and name are not empty, and the
// initial stock is not negative.
func NewCreateProductCommand(
	productID kernel.UUID,
	sku string,
	name string,
	price kernel.Money,
	costPrice kernel.Money,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setSku(sku),
		cmd.setName(name),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.price = price
	cmd.costPrice = costPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Sku returns the stock-keeping unit of the product.
func (c CreateProductCommand) Sku() string {
	return c.sku
}

// Name returns the display name of the product.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the sale price per unit.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// CostPrice returns the acquisition cost per unit.
func (c CreateProductCommand) CostPrice() kernel.Money {
	return c.costPrice
}

// Stock returns the initial quantity on hand.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSku(sku string) error {
	if sku == "" {
		return ErrSkuIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
