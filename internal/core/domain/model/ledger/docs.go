// Package ledger provides double-entry bookkeeping domain entities for the
// storefront system. Every confirmed sale and every cancellation of a
// confirmed sale is recorded as a balanced journal entry against a small
// chart of accounts.
//
// The package includes:
//   - Account: An aggregate tracking the running balance of one ledger account
//   - AccountType: The five account categories with their debit/credit semantics
//   - JournalEntry: An aggregate of entry lines that must balance to be created
//   - EntryLine: A value object debiting or crediting one account
//
// Key business rules:
//   - A journal entry is valid only when total debits equal total credits
//   - Entry line amounts are strictly positive
//   - Debits increase asset and expense balances and decrease the others;
//     credits do the opposite
package ledger
