package ledgerrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddAccount saves a new ledger account to the database.
func (r *GormLedgerRepository) AddAccount(ctx context.Context, account *ledger.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// UpdateAccount saves the running balance of an existing account.
func (r *GormLedgerRepository) UpdateAccount(ctx context.Context, account *ledger.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := accountFromDomain(account)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("Balance").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// GetAccountByName retrieves an account by its unique name, locking the row
// until the current transaction completes. Concurrent postings to the same
// account are therefore serialized.
func (r *GormLedgerRepository) GetAccountByName(ctx context.Context, name string) (*ledger.Account, error) {
	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accountName", name)
		}
		return nil, err
	}

	return accountToDomain(dto)
}

// AddEntry saves a journal entry with all its lines to the database.
// Entries are append-only; there is no update or delete.
func (r *GormLedgerRepository) AddEntry(ctx context.Context, entry *ledger.JournalEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
