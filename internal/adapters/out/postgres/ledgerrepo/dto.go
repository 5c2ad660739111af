// Package ledgerrepo provides data transfer objects and mapping functions
// for the chart of accounts and the journal.
package ledgerrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDTO represents the database structure for persisting ledger accounts.
// The balance is a signed running total in the account's normal direction.
type AccountDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"uniqueIndex"`
	AccountType string          `gorm:"type:varchar(16)"`
	Balance     decimal.Decimal `gorm:"type:numeric(19,4)"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// EntryDTO represents the database structure for persisting journal entries.
// Entries are append-only.
type EntryDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OccurredAt  time.Time      `gorm:"index"`
	Description string
	Lines       []EntryLineDTO `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for journal entry entities.
func (EntryDTO) TableName() string {
	return "journal_entries"
}

// EntryLineDTO represents one debit or credit line of a journal entry.
type EntryLineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	EntryID   uuid.UUID       `gorm:"type:uuid;index"`
	AccountID uuid.UUID       `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(19,4)"`
	LineType  string          `gorm:"type:varchar(8)"`
}

// TableName specifies the database table name for journal entry lines.
func (EntryLineDTO) TableName() string {
	return "journal_entry_lines"
}

// accountFromDomain converts an account domain aggregate to its database representation.
func accountFromDomain(aggregate *ledger.Account) AccountDTO {
	return AccountDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		AccountType: aggregate.AccountType().String(),
		Balance:     aggregate.Balance(),
	}
}

// accountToDomain converts a database DTO to an account domain aggregate.
func accountToDomain(dto AccountDTO) (*ledger.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountType, err := ledger.AccountTypeFromString(dto.AccountType)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreAccount(id, dto.Name, accountType, dto.Balance)
}

// entryFromDomain converts a journal entry aggregate to its database representation.
func entryFromDomain(aggregate *ledger.JournalEntry) EntryDTO {
	lines := make([]EntryLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, EntryLineDTO{
			EntryID:   aggregate.ID().Bytes(),
			AccountID: line.AccountID().Bytes(),
			Amount:    line.Amount().Amount(),
			LineType:  line.LineType().String(),
		})
	}

	return EntryDTO{
		ID:          aggregate.ID().Bytes(),
		OccurredAt:  aggregate.OccurredAt(),
		Description: aggregate.Description(),
		Lines:       lines,
	}
}
