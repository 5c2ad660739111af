package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer ID is required")
	ErrLinesAreRequired     = errors.New("at least one order line is required")
	ErrQuantityIsInvalid    = errors.New("quantity must be greater than 0")
)

// OrderLine describes one requested line of a new order: which product, how
// many units, and at which unit price the sale was agreed. The unit price is
// part of the request (quotes and discounts make it differ from the catalog
// price); the acquisition cost is not, the handler reads it from the catalog.
type OrderLine struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderLine creates a line for a new order request.
// Validates that the product ID is valid and the quantity is positive. The
// unit price is non-negative by construction of kernel.Money.
func NewOrderLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the requested number of units.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the agreed selling price per unit.
func (l OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	l.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to create a new order.
// Encapsulates the customer placing the order and the requested lines.
//
// Example:
//
//	line, _ := NewOrderLine(productID, 2, unitPrice)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "cust_7890", []OrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	lines      []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the customer ID is not empty, and at
// least one valid line is present. Returns an error if any validation fails.
func NewCreateOrderCommand(orderID kernel.UUID, customerID string, lines []OrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
