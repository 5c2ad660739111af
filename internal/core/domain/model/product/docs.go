// Package product provides the Product aggregate for catalog and inventory
// management in the storefront system.
//
// A product carries a stock-keeping unit, display name, sale price, acquisition
// cost, and the quantity currently on hand. Stock is reserved when an order is
// confirmed and returned when a confirmed order is cancelled.
//
// Key business rules:
//   - Products must have a valid unique identifier, a SKU, and a name
//   - Stock can never go negative; reservations exceeding stock are rejected
//   - Price and cost are non-negative monetary values
package product
