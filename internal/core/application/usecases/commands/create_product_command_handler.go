package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for catalog product
// creation.
//
// Example:
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	cmd, _ := NewCreateProductCommand(kernel.NewUUID(), "SKU-001", "Widget", price, cost, 100)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("product creation failed: %w", err)
//	}
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Uses a transaction to ensure the product is properly persisted or rolled
// back on error.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	newProduct, err := product.NewProduct(
		cmd.ProductID(), cmd.Sku(), cmd.Name(), cmd.Price(), cmd.CostPrice(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
