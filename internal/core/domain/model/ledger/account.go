package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for account operations.
var (
	// ErrAccountNameIsRequired is returned when attempting to create an account without a name.
	ErrAccountNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized Account.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// AccountType categorizes a ledger account. The category determines how
// debits and credits affect the account balance.
type AccountType int

const (
	// AccountTypeUnknown represents an invalid or undefined account type.
	AccountTypeUnknown AccountType = iota

	// Asset accounts (cash, inventory) carry a debit-normal balance.
	Asset

	// Liability accounts carry a credit-normal balance.
	Liability

	// Equity accounts carry a credit-normal balance.
	Equity

	// Income accounts (sales revenue) carry a credit-normal balance.
	Income

	// Expense accounts (cost of goods sold) carry a debit-normal balance.
	Expense
)

func getValidAccountTypeStrings() map[AccountType]string {
	//nolint:exhaustive // AccountTypeUnknown is intentionally excluded as it's invalid
	return map[AccountType]string{
		Asset:     "asset",
		Liability: "liability",
		Equity:    "equity",
		Income:    "income",
		Expense:   "expense",
	}
}

// AccountTypeFromString parses an AccountType from its string representation.
func AccountTypeFromString(s string) (AccountType, error) {
	for accountType, str := range getValidAccountTypeStrings() {
		if str == s {
			return accountType, nil
		}
	}
	return AccountTypeUnknown, errs.NewValueIsInvalidErrorWithCause("accountType",
		fmt.Errorf("%q is not a valid account type", s))
}

// Validate checks if the AccountType value is valid.
func (t AccountType) Validate() error {
	if _, ok := getValidAccountTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("accountType",
			fmt.Errorf("%d is not a valid account type", t))
	}
	return nil
}

// String returns the lowercase name of the account type.
// Returns "unknown" for invalid values.
func (t AccountType) String() string {
	if str, ok := getValidAccountTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// IsDebitNormal reports whether debits increase the balance of accounts of
// this type. Asset and expense accounts are debit-normal; liability, equity,
// and income accounts are credit-normal.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents one account in the chart of accounts and tracks its
// running balance.
//
// The balance is a signed decimal: applying entries in the abnormal direction
// (for example crediting an asset below zero) is permitted, which is why the
// balance is not a kernel.Money.
//
// Business rules:
//   - Account must have a valid UUID, a non-empty unique name, and a valid type
//   - Debits increase debit-normal balances and decrease credit-normal ones
//   - Credits do the opposite
type Account struct {
	// id uniquely identifies the account
	id kernel.UUID
	// name is the unique human-readable account name, e.g. "Cash"
	name string
	// accountType determines debit/credit semantics
	accountType AccountType
	// balance is the signed running balance
	balance decimal.Decimal
	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewAccount creates a new Account with a zero balance.
// This is the only way to create a valid Account instance.
//
// Parameters:
//   - id: Unique identifier for the account (must be valid UUID)
//   - name: Unique human-readable name (must be non-empty)
//   - accountType: One of the five account categories (must be valid)
//
// Returns:
//   - *Account: A fully initialized account
//   - error: Validation error if any parameter is invalid
func NewAccount(id kernel.UUID, name string, accountType AccountType) (*Account, error) {
	account := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setAccountType(accountType),
	); err != nil {
		return nil, err
	}

	account.balance = decimal.Zero
	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage,
// including its signed running balance.
func RestoreAccount(id kernel.UUID, name string, accountType AccountType, balance decimal.Decimal) (*Account, error) {
	account, err := NewAccount(id, name, accountType)
	if err != nil {
		return nil, err
	}

	account.balance = balance
	return account, nil
}

// IsEqual compares two accounts for equality based on their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// Validate checks if the Account was properly constructed using the NewAccount constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the unique identifier of the account.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the unique human-readable name of the account.
func (a *Account) Name() string {
	return a.name
}

// AccountType returns the category of the account.
func (a *Account) AccountType() AccountType {
	return a.accountType
}

// Balance returns the signed running balance of the account.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Debit applies a debit of the given amount to the account balance.
// Debit-normal accounts increase; credit-normal accounts decrease.
func (a *Account) Debit(amount kernel.Money) {
	if a.accountType.IsDebitNormal() {
		a.balance = a.balance.Add(amount.Amount())
		return
	}
	a.balance = a.balance.Sub(amount.Amount())
}

// Credit applies a credit of the given amount to the account balance.
// Credit-normal accounts increase; debit-normal accounts decrease.
func (a *Account) Credit(amount kernel.Money) {
	if a.accountType.IsDebitNormal() {
		a.balance = a.balance.Sub(amount.Amount())
		return
	}
	a.balance = a.balance.Add(amount.Amount())
}

// Apply posts one journal entry line to the account. The line must reference
// this account.
func (a *Account) Apply(line EntryLine) error {
	if !line.AccountID().IsEqual(a.id) {
		return errs.NewValueIsInvalidErrorWithCause("accountId",
			fmt.Errorf("line references account %s, not %s", line.AccountID(), a.id))
	}

	if line.IsDebit() {
		a.Debit(line.Amount())
	} else {
		a.Credit(line.Amount())
	}
	return nil
}

// setID sets the account's unique identifier with validation.
// This is an internal setter used during account construction.
func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setName sets the account's name with validation.
// This is an internal setter used during account construction.
func (a *Account) setName(name string) error {
	if name == "" {
		return ErrAccountNameIsRequired
	}

	a.name = name
	return nil
}

// setAccountType sets the account's category with validation.
// This is an internal setter used during account construction.
func (a *Account) setAccountType(accountType AccountType) error {
	if err := accountType.Validate(); err != nil {
		return err
	}

	a.accountType = accountType
	return nil
}
