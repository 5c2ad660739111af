package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerIsRequired is returned when attempting to create an order without a customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customerId")

	// ErrOrderHasNoItems is returned when attempting to create or confirm an order with no items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")

	// ErrDuplicateProduct is returned when an order would contain two lines for the same product.
	ErrDuplicateProduct = errs.NewValueIsInvalidErrorWithCause("items", errors.New("duplicate product in order"))
)

// Order represents a customer purchase order. It is the aggregate root that
// manages the order lifecycle from creation through confirmation and shipping,
// or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, never reused
//   - Must reference a customer
//   - Contains at least one item at creation; at most one line per product
//   - Total always equals the sum of item subtotals (derived, never stored by callers)
//   - Status transitions follow the Status state machine
//   - Items are mutable only while the order is in the created status
//   - Shipped and cancelled orders accept no further mutations
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID string

	// items are the order lines, in the sequence they were added
	items []Item

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once at creation
	createdAt time.Time

	// updatedAt is advanced on every successful mutation
	updatedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the created status.
// This is the only way to create a valid new Order, ensuring all business
// invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - customerID: The customer placing the order (must be non-empty)
//   - items: The order lines (must be non-empty, valid, one line per product)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, price, cost)
//	o, err := order.NewOrder(kernel.NewUUID(), "cust_7890", []order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, customerID string, items []Item) (*Order, error) {
	o := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it accepts any valid status and the persisted timestamps,
// and permits an empty item list (a created order may have had all its lines
// removed). The restored order behaves identically to one created through
// normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o.items = append([]Item(nil), items...)
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines in the sequence they were added.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Total returns the sum of all item subtotals. It is recomputed on every
// call, so it always reflects the current item list.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalCost returns the sum of all item cost subtotals (cost of goods sold).
func (o *Order) TotalCost() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.CostSubtotal())
	}
	return total
}

// Confirm transitions the order to the confirmed status.
//
// Business rules:
//   - The order must be in the created status
//   - The order must have at least one item
//
// On failure the order is left unchanged and an *errs.InvalidTransitionError
// is returned.
func (o *Order) Confirm() error {
	if len(o.items) == 0 {
		return errs.NewInvalidTransitionErrorWithCause(opConfirm, o.status.String(), ErrOrderHasNoItems)
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Ship transitions the order to the shipped status.
// The order must be in the confirmed status. Shipped is a final state.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel transitions the order to the cancelled status.
// Permitted from created or confirmed only; cancelling a shipped or already
// cancelled order fails with *errs.InvalidTransitionError and has no effect.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AddItem appends an order line. Permitted only while the order is in the
// created status. If a line for the same product already exists, the
// quantities are merged and the existing unit price is kept.
func (o *Order) AddItem(item Item) error {
	if o.status != Created {
		return errs.NewInvalidTransitionError(opAddItem, o.status.String())
	}
	if err := item.Validate(); err != nil {
		return err
	}

	for idx, existing := range o.items {
		if existing.ProductID().IsEqual(item.ProductID()) {
			merged, err := existing.withQuantity(existing.Quantity() + item.Quantity())
			if err != nil {
				return err
			}
			o.items[idx] = merged
			o.touch()
			return nil
		}
	}

	o.items = append(o.items, item)
	o.touch()
	return nil
}

// RemoveItem removes the order line for the given product. Permitted only
// while the order is in the created status. Returns *errs.ObjectNotFoundError
// if no line references the product.
func (o *Order) RemoveItem(productID kernel.UUID) error {
	if o.status != Created {
		return errs.NewInvalidTransitionError(opRemoveItem, o.status.String())
	}
	if err := productID.Validate(); err != nil {
		return err
	}

	for idx, existing := range o.items {
		if existing.ProductID().IsEqual(productID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.touch()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("productId", productID.String())
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIsRequired
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ProductID()]; ok {
			return ErrDuplicateProduct
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = append([]Item(nil), items...)
	return nil
}
