package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// ConfirmOrderCommandHandler orchestrates the order confirmation workflow.
// Confirmation is the point where the sale becomes binding: stock is reserved
// for every line and the sale is posted to the ledger as a balanced journal
// entry. All of it happens in one transaction.
//
// The order row is locked with GetForUpdate, so concurrent confirmations of
// the same order are serialized: exactly one succeeds and the rest fail with
// an invalid transition error.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // Order was not in the created status
//	case errors.Is(err, product.ErrInsufficientStock):
//	    // One of the lines cannot be covered
//	case err != nil:
//	    // Infrastructure failure
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation operations.
// Requires a UoWFactory for coordinating transactional updates across the
// order, product, and ledger repositories.
func NewConfirmOrderCommandHandler(uowFactory UoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order confirmation command.
// Locks and transitions the order, reserves stock all-or-nothing, posts the
// sale entry, and persists every touched aggregate before committing.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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
	productRepo := uow.ProductRepository()
	ledgerRepo := uow.LedgerRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Confirm(); err != nil {
		return err
	}

	products, err := productRepo.GetAllByIDs(ctx, productIDsOf(o))
	if err != nil {
		return err
	}

	if err = services.NewStockAllocator().Reserve(o, products); err != nil {
		return err
	}

	accounts, err := loadSaleAccounts(ctx, ledgerRepo)
	if err != nil {
		return err
	}

	entry, err := services.NewSaleRecorder().RecordSale(o, accounts)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = persistSalePostings(ctx, ledgerRepo, accounts, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// productIDsOf collects the distinct product identifiers of an order's lines.
func productIDsOf(o *order.Order) []kernel.UUID {
	items := o.Items()
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID())
	}
	return ids
}

// loadSaleAccounts fetches and locks the four chart accounts touched by a sale.
func loadSaleAccounts(ctx context.Context, repo ports.LedgerRepository) (services.SaleAccounts, error) {
	cash, err := repo.GetAccountByName(ctx, services.AccountCash)
	if err != nil {
		return services.SaleAccounts{}, err
	}
	revenue, err := repo.GetAccountByName(ctx, services.AccountSalesRevenue)
	if err != nil {
		return services.SaleAccounts{}, err
	}
	inventory, err := repo.GetAccountByName(ctx, services.AccountInventory)
	if err != nil {
		return services.SaleAccounts{}, err
	}
	cogs, err := repo.GetAccountByName(ctx, services.AccountCostOfGoodsSold)
	if err != nil {
		return services.SaleAccounts{}, err
	}

	return services.SaleAccounts{
		Cash:            cash,
		SalesRevenue:    revenue,
		Inventory:       inventory,
		CostOfGoodsSold: cogs,
	}, nil
}

// persistSalePostings saves the journal entry and the updated account
// balances. A nil entry means the recorder had nothing to post.
func persistSalePostings(
	ctx context.Context,
	repo ports.LedgerRepository,
	accounts services.SaleAccounts,
	entry *ledger.JournalEntry,
) error {
	if entry == nil {
		return nil
	}

	if err := repo.AddEntry(ctx, entry); err != nil {
		return err
	}

	if err := repo.UpdateAccount(ctx, accounts.Cash); err != nil {
		return err
	}
	if err := repo.UpdateAccount(ctx, accounts.SalesRevenue); err != nil {
		return err
	}
	if err := repo.UpdateAccount(ctx, accounts.Inventory); err != nil {
		return err
	}
	return repo.UpdateAccount(ctx, accounts.CostOfGoodsSold)
}
