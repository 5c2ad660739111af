package services

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/core/domain/model/order"
)

// Well-known account names used for sale bookkeeping.
const (
	AccountCash            = "Cash"
	AccountSalesRevenue    = "Sales Revenue"
	AccountInventory       = "Inventory"
	AccountCostOfGoodsSold = "Cost of Goods Sold"
)

// SaleAccounts groups the chart accounts touched when recording a sale.
// All four accounts must be valid; the caller loads them within the same
// transaction that persists the resulting journal entry.
type SaleAccounts struct {
	Cash            *ledger.Account
	SalesRevenue    *ledger.Account
	Inventory       *ledger.Account
	CostOfGoodsSold *ledger.Account
}

// Validate checks that all four accounts are properly constructed.
func (a SaleAccounts) Validate() error {
	for _, account := range a.all() {
		if err := account.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (a SaleAccounts) all() []*ledger.Account {
	return []*ledger.Account{a.Cash, a.SalesRevenue, a.Inventory, a.CostOfGoodsSold}
}

// SaleRecorder is a domain service that turns order lifecycle events into
// balanced journal entries and posts them to the chart of accounts.
//
// Key responsibilities:
//   - Building the sale entry when an order is confirmed
//   - Building the reversing entry when a confirmed order is cancelled
//   - Posting every line to its account so running balances stay current
//
// Bookkeeping rules:
//   - A sale debits Cash and credits Sales Revenue for the order total
//   - When the order carries acquisition costs, the sale also debits
//     Cost of Goods Sold and credits Inventory for the total cost
//   - Zero amounts produce no postings; an order with neither total nor
//     cost yields no entry at all
//   - A cancellation posts the exact mirror of the sale entry
//   - Every produced entry is balanced, which NewJournalEntry enforces
type SaleRecorder struct{}

// NewSaleRecorder creates a new SaleRecorder instance.
func NewSaleRecorder() SaleRecorder {
	return SaleRecorder{}
}

// RecordSale builds and posts the journal entry for a confirmed order.
//
// Parameters:
//   - o: The confirmed order (must be valid)
//   - accounts: The chart accounts to post against
//
// Returns:
//   - *ledger.JournalEntry: The posted, balanced entry, or nil when the
//     order has nothing to post (zero total and zero cost)
//   - error: Validation error if the order or accounts are invalid
func (s SaleRecorder) RecordSale(o *order.Order, accounts SaleAccounts) (*ledger.JournalEntry, error) {
	lines, err := s.saleLines(o, accounts, false)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	description := fmt.Sprintf("Sale for order %s", o.ID())
	return s.post(accounts, description, lines)
}

// RecordCancellation builds and posts the reversing entry for a confirmed
// order that is being cancelled. The entry mirrors the original sale: Cash is
// credited, Sales Revenue debited, and any cost postings are reversed. An
// order whose sale produced no entry produces no reversal either.
func (s SaleRecorder) RecordCancellation(o *order.Order, accounts SaleAccounts) (*ledger.JournalEntry, error) {
	lines, err := s.saleLines(o, accounts, true)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	description := fmt.Sprintf("Cancellation of order %s", o.ID())
	return s.post(accounts, description, lines)
}

// saleLines builds the entry lines for a sale, or their mirror image when
// reversed is true.
func (s SaleRecorder) saleLines(o *order.Order, accounts SaleAccounts, reversed bool) ([]ledger.EntryLine, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := accounts.Validate(); err != nil {
		return nil, err
	}

	debit, credit := ledger.Debit, ledger.Credit
	if reversed {
		debit, credit = credit, debit
	}

	var lines []ledger.EntryLine

	total := o.Total()
	if !total.IsZero() {
		cashLine, err := ledger.NewEntryLine(accounts.Cash.ID(), total, debit)
		if err != nil {
			return nil, err
		}
		revenueLine, err := ledger.NewEntryLine(accounts.SalesRevenue.ID(), total, credit)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cashLine, revenueLine)
	}

	totalCost := o.TotalCost()
	if !totalCost.IsZero() {
		cogsLine, err := ledger.NewEntryLine(accounts.CostOfGoodsSold.ID(), totalCost, debit)
		if err != nil {
			return nil, err
		}
		inventoryLine, err := ledger.NewEntryLine(accounts.Inventory.ID(), totalCost, credit)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cogsLine, inventoryLine)
	}

	return lines, nil
}

// post creates the balanced entry and applies every line to its account.
func (s SaleRecorder) post(accounts SaleAccounts, description string, lines []ledger.EntryLine) (*ledger.JournalEntry, error) {
	entry, err := ledger.NewJournalEntry(kernel.NewUUID(), time.Now(), description, lines)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*ledger.Account, 4)
	for _, account := range accounts.all() {
		byID[account.ID()] = account
	}

	for _, line := range entry.Lines() {
		account, ok := byID[line.AccountID()]
		if !ok {
			return nil, fmt.Errorf("no account loaded for entry line %s", line.AccountID())
		}
		if err := account.Apply(line); err != nil {
			return nil, err
		}
	}

	return entry, nil
}
