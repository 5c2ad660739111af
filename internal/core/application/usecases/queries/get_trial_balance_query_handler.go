package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTrialBalanceQueryHandler builds the trial balance from stored accounts.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetTrialBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetTrialBalanceQueryHandler creates a handler for trial balance queries.
// Requires a GORM database connection for query execution.
func NewGetTrialBalanceQueryHandler(db *gorm.DB) GetTrialBalanceQueryHandler {
	return GetTrialBalanceQueryHandler{db: db}
}

// Handle executes the query to build the trial balance.
// A debit-normal account with a positive balance lands in the debit column,
// with a negative balance in the credit column, and symmetrically for
// credit-normal accounts. Rows are sorted by account name.
func (h GetTrialBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetTrialBalanceQuery,
) (*GetTrialBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response := GetTrialBalanceQueryResponse{
		Rows:         make([]TrialBalanceRow, 0),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			account_type,
			balance
		FROM accounts
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row TrialBalanceRow
		var id uuid.UUID
		var balance decimal.Decimal

		err = rows.Scan(
			&id,
			&row.AccountName,
			&row.AccountType,
			&balance,
		)
		if err != nil {
			return nil, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.AccountID = accountID

		accountType, typeErr := ledger.AccountTypeFromString(row.AccountType)
		if typeErr != nil {
			return nil, typeErr
		}

		row.Debit, row.Credit = splitBalance(accountType, balance)
		response.TotalDebits = response.TotalDebits.Add(row.Debit)
		response.TotalCredits = response.TotalCredits.Add(row.Credit)
		response.Rows = append(response.Rows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	response.IsBalanced = response.TotalDebits.Equal(response.TotalCredits)

	return &response, nil
}

// splitBalance places an account balance in the debit or credit column.
// A negative balance flips to the opposite column with its sign removed.
func splitBalance(accountType ledger.AccountType, balance decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	debitSide := accountType.IsDebitNormal()
	if balance.IsNegative() {
		debitSide = !debitSide
		balance = balance.Neg()
	}

	if debitSide {
		return balance, decimal.Zero
	}
	return decimal.Zero, balance
}
