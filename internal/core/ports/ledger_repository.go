package ports

import (
	"context"

	"storefront/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the chart of accounts
// and the journal.
type LedgerRepository interface {
	// AddAccount persists a new ledger account.
	// The account must be valid and its name must be unique.
	AddAccount(ctx context.Context, account *ledger.Account) error

	// UpdateAccount persists the running balance of an existing account.
	UpdateAccount(ctx context.Context, account *ledger.Account) error

	// GetAccountByName retrieves an account by its unique name, locking the
	// account row for the duration of the current transaction. Posting to the
	// same accounts from concurrent transactions is therefore serialized.
	GetAccountByName(ctx context.Context, name string) (*ledger.Account, error)

	// AddEntry persists a journal entry with all its lines.
	// Journal entries are append-only: there is no update or delete.
	AddEntry(ctx context.Context, entry *ledger.JournalEntry) error
}
