package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// CancelOrderCommandHandler orchestrates the order cancellation workflow.
// Orders in the created status are simply cancelled. Orders in the confirmed
// status additionally have their reserved stock returned to the catalog and
// the original sale reversed in the ledger. Shipped and already cancelled
// orders are rejected with an invalid transition error.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrInvalidTransition) {
//	    // Order already shipped or cancelled
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
// Requires a UoWFactory for coordinating transactional updates across the
// order, product, and ledger repositories.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// Locks the order row, transitions it to cancelled, and compensates stock and
// ledger when the order had already been confirmed.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	wasConfirmed := o.Status() == order.Confirmed

	if err = o.Cancel(); err != nil {
		return err
	}

	if wasConfirmed {
		if err = h.compensate(ctx, uow, o); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// compensate returns reserved stock and posts the reversing journal entry for
// an order that was confirmed before cancellation.
func (h CancelOrderCommandHandler) compensate(ctx context.Context, uow UoW, o *order.Order) error {
	productRepo := uow.ProductRepository()
	ledgerRepo := uow.LedgerRepository()

	products, err := productRepo.GetAllByIDs(ctx, productIDsOf(o))
	if err != nil {
		return err
	}

	if err = services.NewStockAllocator().Release(o, products); err != nil {
		return err
	}

	accounts, err := loadSaleAccounts(ctx, ledgerRepo)
	if err != nil {
		return err
	}

	entry, err := services.NewSaleRecorder().RecordCancellation(o, accounts)
	if err != nil {
		return err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return persistSalePostings(ctx, ledgerRepo, accounts, entry)
}
