package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/ledger"
	"storefront/internal/pkg/errs"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func TestAccountType(t *testing.T) {
	t.Run("should parse all valid account types", func(t *testing.T) {
		tests := map[string]ledger.AccountType{
			"asset":     ledger.Asset,
			"liability": ledger.Liability,
			"equity":    ledger.Equity,
			"income":    ledger.Income,
			"expense":   ledger.Expense,
		}

		for str, expected := range tests {
			accountType, err := ledger.AccountTypeFromString(str)

			require.NoError(t, err)
			assert.Equal(t, expected, accountType)
			assert.Equal(t, str, accountType.String())
		}
	})

	t.Run("should fail for unrecognized value", func(t *testing.T) {
		_, err := ledger.AccountTypeFromString("contra-asset")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for unknown type", func(t *testing.T) {
		err := ledger.AccountTypeUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("asset and expense are debit normal", func(t *testing.T) {
		assert.True(t, ledger.Asset.IsDebitNormal())
		assert.True(t, ledger.Expense.IsDebitNormal())
		assert.False(t, ledger.Liability.IsDebitNormal())
		assert.False(t, ledger.Equity.IsDebitNormal())
		assert.False(t, ledger.Income.IsDebitNormal())
	})
}

func TestNewAccount(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid account with zero balance", func(t *testing.T) {
		account, err := ledger.NewAccount(validID, "Cash", ledger.Asset)

		require.NoError(t, err)
		require.NoError(t, account.Validate())
		assert.True(t, account.ID().IsEqual(validID))
		assert.Equal(t, "Cash", account.Name())
		assert.Equal(t, ledger.Asset, account.AccountType())
		assert.True(t, account.Balance().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		account, err := ledger.NewAccount(invalidID, "Cash", ledger.Asset)

		require.Error(t, err)
		assert.Nil(t, account)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		account, err := ledger.NewAccount(validID, "", ledger.Asset)

		require.Error(t, err)
		assert.Nil(t, account)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown account type", func(t *testing.T) {
		account, err := ledger.NewAccount(validID, "Cash", ledger.AccountTypeUnknown)

		require.Error(t, err)
		assert.Nil(t, account)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should restore account with persisted balance", func(t *testing.T) {
		balance := decimal.RequireFromString("-12.50")

		account, err := ledger.RestoreAccount(kernel.NewUUID(), "Sales Revenue", ledger.Income, balance)

		require.NoError(t, err)
		assert.True(t, account.Balance().Equal(balance))
	})
}

func TestAccount_DebitCredit(t *testing.T) {
	t.Run("debit increases asset balance", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Cash", ledger.Asset)
		require.NoError(t, err)

		account.Debit(mustMoney(t, "20.00"))

		assert.Equal(t, "20", account.Balance().String())
	})

	t.Run("credit decreases asset balance", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Cash", ledger.Asset)
		require.NoError(t, err)
		account.Debit(mustMoney(t, "20.00"))

		account.Credit(mustMoney(t, "5.00"))

		assert.Equal(t, "15", account.Balance().String())
	})

	t.Run("credit increases income balance", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Sales Revenue", ledger.Income)
		require.NoError(t, err)

		account.Credit(mustMoney(t, "20.00"))

		assert.Equal(t, "20", account.Balance().String())
	})

	t.Run("debit decreases liability balance", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Accounts Payable", ledger.Liability)
		require.NoError(t, err)
		account.Credit(mustMoney(t, "30.00"))

		account.Debit(mustMoney(t, "10.00"))

		assert.Equal(t, "20", account.Balance().String())
	})

	t.Run("debit increases expense balance", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Cost of Goods Sold", ledger.Expense)
		require.NoError(t, err)

		account.Debit(mustMoney(t, "12.00"))

		assert.Equal(t, "12", account.Balance().String())
	})
}

func TestAccount_Apply(t *testing.T) {
	t.Run("should post a line referencing the account", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Cash", ledger.Asset)
		require.NoError(t, err)
		line, err := ledger.NewEntryLine(account.ID(), mustMoney(t, "20.00"), ledger.Debit)
		require.NoError(t, err)

		require.NoError(t, account.Apply(line))

		assert.Equal(t, "20", account.Balance().String())
	})

	t.Run("should reject a line for another account", func(t *testing.T) {
		account, err := ledger.NewAccount(kernel.NewUUID(), "Cash", ledger.Asset)
		require.NoError(t, err)
		line, err := ledger.NewEntryLine(kernel.NewUUID(), mustMoney(t, "20.00"), ledger.Debit)
		require.NoError(t, err)

		err = account.Apply(line)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, account.Balance().IsZero())
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("should fail validation for nil account", func(t *testing.T) {
		var account *ledger.Account

		err := account.Validate()

		require.Error(t, err)
		assert.Equal(t, ledger.ErrAccountIsNotConstructed, err)
	})

	t.Run("should fail validation for directly instantiated account", func(t *testing.T) {
		account := &ledger.Account{}

		err := account.Validate()

		require.Error(t, err)
		assert.Equal(t, ledger.ErrAccountIsNotConstructed, err)
	})
}
