package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler expires orders abandoned in the created
// status. Each stale order is cancelled in its own transaction with a row
// lock; the status is re-checked under the lock, so an order that was
// confirmed concurrently is simply skipped rather than cancelled. Expiry
// never compensates, which is why it only ever touches created orders.
//
// Example:
//
//	handler := NewCancelStaleOrdersCommandHandler(uowFactory)
//	cmd, _ := NewCancelStaleOrdersCommand(24 * time.Hour)
//	cancelled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("expiry run failed: %v", err)
//	}
//	log.Printf("expired %d orders", cancelled)
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order expiry.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command and returns how many orders were cancelled.
// The candidate list is read first; each candidate is then re-checked under a
// row lock before cancellation.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	ids, err := h.staleOrderIDs(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, id := range ids {
		ok, err := h.cancelOne(ctx, id)
		if err != nil {
			return cancelled, err
		}
		if ok {
			cancelled++
		}
	}

	return cancelled, nil
}

// staleOrderIDs reads the identifiers of expiry candidates in a short
// read-only transaction.
func (h CancelStaleOrdersCommandHandler) staleOrderIDs(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ids, err := uow.OrderRepository().GetAllStaleCreated(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// cancelOne cancels a single order in its own transaction. Returns false
// without error when the order was confirmed, cancelled, or deleted since the
// candidate list was read.
func (h CancelStaleOrdersCommandHandler) cancelOne(ctx context.Context, id kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	// Confirmed orders must not be expired: cancelling them requires stock
	// and ledger compensation, which only CancelOrderCommandHandler does.
	if o.Status() != order.Created {
		return false, nil
	}

	if err = o.Cancel(); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
