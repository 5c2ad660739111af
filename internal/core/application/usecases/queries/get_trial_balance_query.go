package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetTrialBalanceQueryIsNotConstructed = errors.New(
		"GetTrialBalanceQuery must be created via NewGetTrialBalanceQuery constructor",
	)
)

// GetTrialBalanceQuery retrieves the ledger trial balance.
// Every account appears with its balance placed in the debit or credit
// column according to the account's normal side. A ledger whose journal
// entries are all balanced yields equal debit and credit totals.
//
// Example:
//
//	query := NewGetTrialBalanceQuery()
//	handler := NewGetTrialBalanceQueryHandler(db)
//
//	balance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get trial balance: %w", err)
//	}
//
//	fmt.Printf("Debits %s, credits %s\n", balance.TotalDebits, balance.TotalCredits)
type GetTrialBalanceQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrialBalanceQuery creates a query to retrieve the trial balance.
// This is a parameterless query that covers every ledger account.
func NewGetTrialBalanceQuery() GetTrialBalanceQuery {
	return GetTrialBalanceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrialBalanceQueryIsNotConstructed if validation fails.
func (q GetTrialBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetTrialBalanceQueryIsNotConstructed)
}

// TrialBalanceRow represents one account in the trial balance.
// Exactly one of Debit and Credit is non-zero for a non-empty balance.
type TrialBalanceRow struct {
	AccountID   kernel.UUID
	AccountName string
	AccountType string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// GetTrialBalanceQueryResponse represents the trial balance read model.
type GetTrialBalanceQueryResponse struct {
	Rows         []TrialBalanceRow
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
	IsBalanced   bool
}
