package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrSkuIsRequired is returned when attempting to create a product without a SKU.
	ErrSkuIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrInsufficientStock is returned when a reservation exceeds the quantity on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a sellable item in the catalog.
// It is an aggregate root that manages product identity, pricing, and the
// quantity on hand.
//
// Key responsibilities:
//   - Managing product identity (ID, SKU, name)
//   - Tracking the sale price and acquisition cost used for accounting
//   - Reserving stock when orders are confirmed
//   - Restocking when inventory arrives or confirmed orders are cancelled
//
// Business rules:
//   - Product must have a valid UUID, non-empty SKU, and non-empty name
//   - Stock is never negative
//   - Reservations are all-or-nothing: a reservation larger than the
//     available stock fails and leaves the stock unchanged
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("5.00")
//	cost, _ := kernel.NewMoneyFromString("3.00")
//	p, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Widget", price, cost, 100)
//	if err != nil {
//	    // Handle construction error
//	}
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// sku is the human-readable stock-keeping unit
	sku string
	// name is the display name of the product
	name string
	// price is the sale price per unit
	price kernel.Money
	// costPrice is the acquisition cost per unit, used for cost of goods sold
	costPrice kernel.Money
	// stock is the quantity currently on hand
	stock int
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the specified parameters.
// This is the only way to create a valid Product instance.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid UUID)
//   - sku: Stock-keeping unit (must be non-empty)
//   - name: Display name (must be non-empty)
//   - price: Sale price per unit
//   - costPrice: Acquisition cost per unit
//   - stock: Initial quantity on hand (must be non-negative)
//
// Returns:
//   - *Product: A fully initialized product
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewProduct(
	id kernel.UUID,
	sku string,
	name string,
	price kernel.Money,
	costPrice kernel.Money,
	stock int,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSku(sku),
		p.setName(name),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.price = price
	p.costPrice = costPrice
	return p, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage.
// The restored product behaves identically to one created through normal
// domain operations.
func RestoreProduct(
	id kernel.UUID,
	sku string,
	name string,
	price kernel.Money,
	costPrice kernel.Money,
	stock int,
) (*Product, error) {
	return NewProduct(id, sku, name, price, costPrice, stock)
}

// IsEqual compares two products for equality based on their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Product was properly constructed using the NewProduct constructor.
// The zero value of Product is invalid and will fail this validation.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Sku returns the stock-keeping unit of the product.
func (p *Product) Sku() string {
	return p.sku
}

// Name returns the display name of the product.
func (p *Product) Name() string {
	return p.name
}

// Price returns the sale price per unit.
func (p *Product) Price() kernel.Money {
	return p.price
}

// CostPrice returns the acquisition cost per unit.
func (p *Product) CostPrice() kernel.Money {
	return p.costPrice
}

// Stock returns the quantity currently on hand.
func (p *Product) Stock() int {
	return p.stock
}

// CanReserve reports whether the requested quantity can be reserved from the
// current stock. A non-positive quantity is a validation error.
func (p *Product) CanReserve(quantity int) (bool, error) {
	if quantity <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return quantity <= p.stock, nil
}

// Reserve removes the requested quantity from stock.
// The reservation is all-or-nothing: if the quantity exceeds the stock on
// hand, ErrInsufficientStock is returned and the stock is unchanged.
func (p *Product) Reserve(quantity int) error {
	ok, err := p.CanReserve(quantity)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: product %s has %d of %d requested",
			ErrInsufficientStock, p.sku, p.stock, quantity)
	}

	p.stock -= quantity
	return nil
}

// Restock adds the given quantity back to stock. Used both for inventory
// arrivals and for returning stock when a confirmed order is cancelled.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

// setID sets the product's unique identifier with validation.
// This is an internal setter used during product construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setSku sets the product's SKU with validation.
// This is an internal setter used during product construction.
func (p *Product) setSku(sku string) error {
	if sku == "" {
		return ErrSkuIsRequired
	}

	p.sku = sku
	return nil
}

// setName sets the product's display name with validation.
// This is an internal setter used during product construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

// setStock sets the initial stock level with validation.
// This is an internal setter used during product construction.
func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is less than 0", stock))
	}

	p.stock = stock
	return nil
}
