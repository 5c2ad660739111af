package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler handles removing a product line from an open
// order. Removing the last line is allowed; such an order simply cannot be
// confirmed until a line is added again.
//
// Example:
//
//	handler := NewRemoveOrderItemCommandHandler(uowFactory)
//	cmd, _ := NewRemoveOrderItemCommand(orderID, productID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrObjectNotFound) {
//	    // No line for this product
//	}
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for item removal operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item removal command.
// Locks the order row, removes the line, and persists the change.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	if err = o.RemoveItem(cmd.ProductID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
