package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// RestockProductCommandHandler handles adding inventory to an existing product.
//
// Example:
//
//	handler := NewRestockProductCommandHandler(uowFactory)
//	cmd, _ := NewRestockProductCommand(productID, 50)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("restock failed: %w", err)
//	}
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
// Loads the product with a row lock, adds the quantity, and persists the change.
func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
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

	products, err := productRepo.GetAllByIDs(ctx, []kernel.UUID{cmd.ProductID()})
	if err != nil {
		return err
	}

	p := products[0]
	if err = p.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
