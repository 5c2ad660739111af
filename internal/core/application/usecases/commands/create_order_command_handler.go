package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Selling prices come from the requested lines; the acquisition cost of each
// line is read from the catalog, defaulting to zero for products the catalog
// does not know. The order starts in the "created" status. Stock is not
// touched at this point: reservation happens on confirmation.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	line, _ := NewOrderLine(productID, 2, unitPrice)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "cust_7890", []OrderLine{line})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because both the catalog and the order store are read
// within one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Loads the requested products to snapshot their current acquisition cost
// into the order lines, then persists the new order. The whole operation runs
// in one transaction and is rolled back on any error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		unitCost, err := lookupUnitCost(ctx, productRepo, line.ProductID())
		if err != nil {
			return err
		}

		item, err := order.NewItem(line.ProductID(), line.Quantity(), line.UnitPrice(), unitCost)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// lookupUnitCost reads a product's acquisition cost from the catalog.
// Unknown products cost zero; their existence is checked on confirmation,
// when stock has to be reserved.
func lookupUnitCost(ctx context.Context, productRepo ports.ProductRepository, productID kernel.UUID) (kernel.Money, error) {
	p, err := productRepo.Get(ctx, productID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.ZeroMoney(), nil
	}
	if err != nil {
		return kernel.Money{}, err
	}

	return p.CostPrice(), nil
}
