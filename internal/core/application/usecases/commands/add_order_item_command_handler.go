package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// AddOrderItemCommandHandler handles adding a product line to an open order.
// The selling price comes from the command; the acquisition cost is read from
// the catalog at the moment of addition. If the order already has a line for
// the product, the quantities are merged and the original line price is kept.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	cmd, _ := NewAddOrderItemCommand(orderID, productID, 2, unitPrice)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("adding item failed: %w", err)
//	}
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for item addition operations.
// Requires a UoWFactory because the catalog and the order store are read
// within one transaction.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command.
// Locks the order row, snapshots the line's acquisition cost from the
// catalog, merges the line into the order, and persists the change.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	unitCost, err := lookupUnitCost(ctx, uow.ProductRepository(), cmd.ProductID())
	if err != nil {
		return err
	}

	item, err := order.NewItem(cmd.ProductID(), cmd.Quantity(), cmd.UnitPrice(), unitCost)
	if err != nil {
		return err
	}

	if err = o.AddItem(item); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
