// Package order provides domain entities and business logic for order
// management in the storefront system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object for an order line (product, quantity, unit price, unit cost)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer, and at least one item
//   - Order status follows a defined workflow: created -> confirmed -> shipped
//   - Orders can be cancelled while in the created or confirmed status
//   - Items can only be added or removed while the order is in the created status
//   - The order total is always the sum of its item subtotals
//   - Shipped and cancelled orders are immutable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
