package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/pkg/errs"
)

func makeLine(t *testing.T, amount string, lineType ledger.EntryLineType) ledger.EntryLine {
	t.Helper()
	line, err := ledger.NewEntryLine(kernel.NewUUID(), mustMoney(t, amount), lineType)
	require.NoError(t, err)
	return line
}

func TestNewEntryLine(t *testing.T) {
	accountID := kernel.NewUUID()

	t.Run("should create valid debit line", func(t *testing.T) {
		line, err := ledger.NewEntryLine(accountID, mustMoney(t, "20.00"), ledger.Debit)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.AccountID().IsEqual(accountID))
		assert.Equal(t, "20.00", line.Amount().String())
		assert.Equal(t, ledger.Debit, line.LineType())
		assert.True(t, line.IsDebit())
	})

	t.Run("should create valid credit line", func(t *testing.T) {
		line, err := ledger.NewEntryLine(accountID, mustMoney(t, "20.00"), ledger.Credit)

		require.NoError(t, err)
		assert.False(t, line.IsDebit())
	})

	t.Run("should fail with invalid account ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := ledger.NewEntryLine(invalidID, mustMoney(t, "20.00"), ledger.Debit)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero amount", func(t *testing.T) {
		_, err := ledger.NewEntryLine(accountID, kernel.ZeroMoney(), ledger.Debit)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount must be positive")
	})

	t.Run("should fail with unknown line type", func(t *testing.T) {
		_, err := ledger.NewEntryLine(accountID, mustMoney(t, "20.00"), ledger.EntryLineTypeUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value line", func(t *testing.T) {
		var line ledger.EntryLine

		err := line.Validate()

		require.Error(t, err)
		assert.Equal(t, ledger.ErrEntryLineIsNotConstructed, err)
	})
}

func TestEntryLineTypeFromString(t *testing.T) {
	t.Run("should parse debit and credit", func(t *testing.T) {
		debit, err := ledger.EntryLineTypeFromString("debit")
		require.NoError(t, err)
		assert.Equal(t, ledger.Debit, debit)

		credit, err := ledger.EntryLineTypeFromString("credit")
		require.NoError(t, err)
		assert.Equal(t, ledger.Credit, credit)
	})

	t.Run("should fail for unrecognized value", func(t *testing.T) {
		_, err := ledger.EntryLineTypeFromString("refund")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewJournalEntry(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Now()

	t.Run("should create balanced entry", func(t *testing.T) {
		lines := []ledger.EntryLine{
			makeLine(t, "20.00", ledger.Debit),
			makeLine(t, "20.00", ledger.Credit),
		}

		entry, err := ledger.NewJournalEntry(validID, now, "Sale for order 123", lines)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.True(t, entry.ID().IsEqual(validID))
		assert.Equal(t, "Sale for order 123", entry.Description())
		assert.Len(t, entry.Lines(), 2)
		assert.True(t, entry.IsBalanced())
		assert.Equal(t, "20", entry.TotalDebits().String())
		assert.Equal(t, "20", entry.TotalCredits().String())
		assert.Equal(t, time.UTC, entry.OccurredAt().Location())
	})

	t.Run("should create multi-line balanced entry", func(t *testing.T) {
		// Debit cash 20.00 and COGS 12.00, credit revenue 20.00 and inventory 12.00.
		lines := []ledger.EntryLine{
			makeLine(t, "20.00", ledger.Debit),
			makeLine(t, "20.00", ledger.Credit),
			makeLine(t, "12.00", ledger.Debit),
			makeLine(t, "12.00", ledger.Credit),
		}

		entry, err := ledger.NewJournalEntry(validID, now, "Sale with cost", lines)

		require.NoError(t, err)
		assert.Equal(t, "32", entry.TotalDebits().String())
		assert.Equal(t, "32", entry.TotalCredits().String())
	})

	t.Run("should fail for unbalanced entry", func(t *testing.T) {
		lines := []ledger.EntryLine{
			makeLine(t, "20.00", ledger.Debit),
			makeLine(t, "15.00", ledger.Credit),
		}

		entry, err := ledger.NewJournalEntry(validID, now, "Broken entry", lines)

		require.Error(t, err)
		assert.Nil(t, entry)
		require.ErrorIs(t, err, ledger.ErrEntryIsNotBalanced)
		assert.Contains(t, err.Error(), "debits 20, credits 15")
	})

	t.Run("should fail with fewer than two lines", func(t *testing.T) {
		lines := []ledger.EntryLine{makeLine(t, "20.00", ledger.Debit)}

		entry, err := ledger.NewJournalEntry(validID, now, "Half an entry", lines)

		require.Error(t, err)
		assert.Nil(t, entry)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		lines := []ledger.EntryLine{
			makeLine(t, "20.00", ledger.Debit),
			makeLine(t, "20.00", ledger.Credit),
		}

		entry, err := ledger.NewJournalEntry(validID, now, "", lines)

		require.Error(t, err)
		assert.Nil(t, entry)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed line", func(t *testing.T) {
		var badLine ledger.EntryLine
		lines := []ledger.EntryLine{makeLine(t, "20.00", ledger.Debit), badLine}

		entry, err := ledger.NewJournalEntry(validID, now, "Bad line", lines)

		require.Error(t, err)
		assert.Nil(t, entry)
	})
}

func TestJournalEntry_Validate(t *testing.T) {
	t.Run("should fail validation for nil entry", func(t *testing.T) {
		var entry *ledger.JournalEntry

		err := entry.Validate()

		require.Error(t, err)
		assert.Equal(t, ledger.ErrJournalEntryIsNotConstructed, err)
	})
}
