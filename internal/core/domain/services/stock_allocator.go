package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
)

// ErrProductNotFound is returned when an order line references a product that
// is not among the products supplied to the allocator.
var ErrProductNotFound = errors.New("product not found")

// StockAllocator is a domain service responsible for reserving and releasing
// product stock for the items of an order.
//
// Key responsibilities:
//   - Validating the order and products before touching stock
//   - Reserving stock for every order line, all-or-nothing
//   - Releasing previously reserved stock when a confirmed order is cancelled
//
// Business rules:
//   - Every order line must map to exactly one supplied product
//   - Reservation is atomic: if any line cannot be covered, no stock changes
//   - Released stock is returned to the same products it was reserved from
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	if err := allocator.Reserve(o, products); errors.Is(err, product.ErrInsufficientStock) {
//	    // Reject the confirmation, stock is unchanged
//	}
type StockAllocator struct{}

// NewStockAllocator creates a new StockAllocator instance.
func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Reserve removes stock for every line of the order from the matching
// products. The reservation is all-or-nothing: availability is checked for
// every line before any stock is changed, so a failure leaves all products
// untouched.
//
// Parameters:
//   - o: The order being confirmed (must be valid)
//   - products: The products referenced by the order's lines
//
// Returns:
//   - error: ErrProductNotFound if a line references a missing product,
//     product.ErrInsufficientStock if any line exceeds the available stock,
//     or a validation error
func (s StockAllocator) Reserve(o *order.Order, products []*product.Product) error {
	byID, err := s.indexProducts(o, products)
	if err != nil {
		return err
	}

	for _, item := range o.Items() {
		p := byID[item.ProductID()]
		ok, err := p.CanReserve(item.Quantity())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: product %s has %d of %d requested",
				product.ErrInsufficientStock, p.Sku(), p.Stock(), item.Quantity())
		}
	}

	for _, item := range o.Items() {
		if err := byID[item.ProductID()].Reserve(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// Release returns previously reserved stock to the matching products.
// Used when a confirmed order is cancelled before shipping.
func (s StockAllocator) Release(o *order.Order, products []*product.Product) error {
	byID, err := s.indexProducts(o, products)
	if err != nil {
		return err
	}

	for _, item := range o.Items() {
		if err := byID[item.ProductID()].Restock(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

// indexProducts validates the order and products and maps every order line to
// its product. Fails if any line references a product not in the slice.
func (s StockAllocator) indexProducts(
	o *order.Order,
	products []*product.Product,
) (map[kernel.UUID]*product.Product, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	for _, item := range o.Items() {
		if _, ok := byID[item.ProductID()]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID())
		}
	}

	return byID, nil
}
