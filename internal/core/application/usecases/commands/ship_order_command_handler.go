package commands

import (
	"context"
)

// ShipOrderCommandHandler handles the business logic for shipping an order.
// Shipping is a terminal transition: a shipped order accepts no further
// mutations and cannot be cancelled.
//
// Example:
//
//	handler := NewShipOrderCommandHandler(uowFactory)
//	cmd, _ := NewShipOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipping failed: %w", err)
//	}
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for order shipping operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order shipping command.
// Locks the order row, transitions it to shipped, and persists the change.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if err = o.Ship(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
