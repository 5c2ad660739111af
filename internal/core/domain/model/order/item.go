package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing a single order line: a product, the
// ordered quantity, the unit price charged to the customer, and the unit cost
// used for cost-of-goods-sold accounting.
//
// Invariants:
//   - product identifier must be valid
//   - quantity must be positive
//   - unit price and unit cost are non-negative (guaranteed by kernel.Money)
//
// Item is immutable. Changing a line means removing it and adding a new one
// through the Order aggregate.
type Item struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	unitCost  kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
//
// Parameters:
//   - productID: identifier of the ordered product (must be valid)
//   - quantity: number of units ordered (must be positive)
//   - unitPrice: price per unit charged to the customer
//   - unitCost: acquisition cost per unit (zero when unknown)
//
// Returns a validation error if any parameter is invalid.
func NewItem(productID kernel.UUID, quantity int, unitPrice, unitCost kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	item.unitCost = unitCost
	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price charged per unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// UnitCost returns the acquisition cost per unit.
func (i Item) UnitCost() kernel.Money {
	return i.unitCost
}

// Subtotal returns quantity multiplied by unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

// CostSubtotal returns quantity multiplied by unit cost.
func (i Item) CostSubtotal() kernel.Money {
	return i.unitCost.Mul(i.quantity)
}

// withQuantity returns a copy of the item with the given quantity.
// Used by the aggregate when merging lines for the same product.
func (i Item) withQuantity(quantity int) (Item, error) {
	return NewItem(i.productID, quantity, i.unitPrice, i.unitCost)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
