package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for journal entry operations.
var (
	// ErrEntryLineIsNotConstructed is returned when using an improperly initialized EntryLine.
	ErrEntryLineIsNotConstructed = errors.New("EntryLine must be created via NewEntryLine constructor")
	// ErrJournalEntryIsNotConstructed is returned when using an improperly initialized JournalEntry.
	ErrJournalEntryIsNotConstructed = errors.New("JournalEntry must be created via NewJournalEntry constructor")
	// ErrDescriptionIsRequired is returned when attempting to create an entry without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrEntryLinesAreRequired is returned when attempting to create an entry with fewer than two lines.
	ErrEntryLinesAreRequired = errs.NewValueIsRequiredError("lines")
	// ErrEntryIsNotBalanced is returned when total debits do not equal total credits.
	ErrEntryIsNotBalanced = errors.New("journal entry is not balanced")
)

// EntryLineType marks a journal entry line as a debit or a credit.
type EntryLineType int

const (
	// EntryLineTypeUnknown represents an invalid or undefined line type.
	EntryLineTypeUnknown EntryLineType = iota

	// Debit marks a line that debits its account.
	Debit

	// Credit marks a line that credits its account.
	Credit
)

// Validate checks if the EntryLineType value is valid.
func (t EntryLineType) Validate() error {
	if t != Debit && t != Credit {
		return errs.NewValueIsInvalidErrorWithCause("entryType",
			fmt.Errorf("%d is not a valid entry line type", t))
	}
	return nil
}

// String returns the lowercase name of the line type.
func (t EntryLineType) String() string {
	switch t {
	case Debit:
		return "debit"
	case Credit:
		return "credit"
	default:
		return "unknown"
	}
}

// EntryLineTypeFromString parses an EntryLineType from its string representation.
func EntryLineTypeFromString(s string) (EntryLineType, error) {
	switch s {
	case "debit":
		return Debit, nil
	case "credit":
		return Credit, nil
	default:
		return EntryLineTypeUnknown, errs.NewValueIsInvalidErrorWithCause("entryType",
			fmt.Errorf("%q is not a valid entry line type", s))
	}
}

// EntryLine is a value object debiting or crediting one account by a strictly
// positive amount. Lines are immutable and only exist inside a JournalEntry.
type EntryLine struct {
	accountID kernel.UUID
	amount    kernel.Money
	lineType  EntryLineType

	guard guard.ConstructorGuard
}

// NewEntryLine creates a journal entry line with validation.
//
// Parameters:
//   - accountID: identifier of the account to debit or credit (must be valid)
//   - amount: the posted amount (must be strictly positive)
//   - lineType: Debit or Credit
//
// Returns a validation error if any parameter is invalid.
func NewEntryLine(accountID kernel.UUID, amount kernel.Money, lineType EntryLineType) (EntryLine, error) {
	line := EntryLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setAccountID(accountID),
		line.setAmount(amount),
		lineType.Validate(),
	); err != nil {
		return EntryLine{}, err
	}

	line.lineType = lineType
	return line, nil
}

// Validate ensures the EntryLine was created via NewEntryLine.
func (l EntryLine) Validate() error {
	return l.guard.Validate(ErrEntryLineIsNotConstructed)
}

// AccountID returns the identifier of the debited or credited account.
func (l EntryLine) AccountID() kernel.UUID {
	return l.accountID
}

// Amount returns the posted amount.
func (l EntryLine) Amount() kernel.Money {
	return l.amount
}

// LineType returns whether the line is a debit or a credit.
func (l EntryLine) LineType() EntryLineType {
	return l.lineType
}

// IsDebit reports whether the line debits its account.
func (l EntryLine) IsDebit() bool {
	return l.lineType == Debit
}

func (l *EntryLine) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	l.accountID = accountID
	return nil
}

func (l *EntryLine) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("entry line amount must be positive"))
	}
	l.amount = amount
	return nil
}

// JournalEntry is an aggregate recording one bookkeeping event as a set of
// debit and credit lines.
//
// Business rules:
//   - Must have a valid UUID and a non-empty description
//   - Must have at least two lines
//   - Total debits must equal total credits (the entry must balance)
//
// A JournalEntry is immutable once created: corrections are made by posting
// a reversing entry, never by editing history.
type JournalEntry struct {
	// id uniquely identifies the journal entry
	id kernel.UUID
	// occurredAt is the moment the recorded event took place
	occurredAt time.Time
	// description explains the recorded event, e.g. "Sale for order 123"
	description string
	// lines are the debit and credit postings of the entry
	lines []EntryLine
	// guard ensures the entry was properly constructed
	guard guard.ConstructorGuard
}

// NewJournalEntry creates a balanced journal entry.
// This is the only way to create a valid JournalEntry instance.
//
// Parameters:
//   - id: Unique identifier for the entry (must be valid UUID)
//   - occurredAt: When the recorded event took place
//   - description: Human-readable explanation (must be non-empty)
//   - lines: The debit and credit postings (at least two, must balance)
//
// Returns:
//   - *JournalEntry: A fully initialized journal entry
//   - error: Validation error, or ErrEntryIsNotBalanced when debits and credits differ
func NewJournalEntry(id kernel.UUID, occurredAt time.Time, description string, lines []EntryLine) (*JournalEntry, error) {
	entry := &JournalEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setDescription(description),
		entry.setLines(lines),
	); err != nil {
		return nil, err
	}

	entry.occurredAt = occurredAt.UTC()
	return entry, nil
}

// RestoreJournalEntry reconstructs a JournalEntry aggregate from persistent
// storage. The balance invariant is re-checked on restoration.
func RestoreJournalEntry(id kernel.UUID, occurredAt time.Time, description string, lines []EntryLine) (*JournalEntry, error) {
	return NewJournalEntry(id, occurredAt, description, lines)
}

// IsEqual compares two journal entries for equality based on their unique identifiers.
func (e *JournalEntry) IsEqual(other *JournalEntry) bool {
	if other == nil {
		return false
	}
	return e.id.IsEqual(other.id)
}

// Validate checks if the JournalEntry was properly constructed.
func (e *JournalEntry) Validate() error {
	if e == nil {
		return ErrJournalEntryIsNotConstructed
	}
	return e.guard.Validate(ErrJournalEntryIsNotConstructed)
}

// ID returns the unique identifier of the journal entry.
func (e *JournalEntry) ID() kernel.UUID {
	return e.id
}

// OccurredAt returns when the recorded event took place.
func (e *JournalEntry) OccurredAt() time.Time {
	return e.occurredAt
}

// Description returns the human-readable explanation of the entry.
func (e *JournalEntry) Description() string {
	return e.description
}

// Lines returns a copy of the entry's debit and credit postings.
func (e *JournalEntry) Lines() []EntryLine {
	return append([]EntryLine(nil), e.lines...)
}

// TotalDebits returns the sum of all debit line amounts.
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.lines {
		if line.IsDebit() {
			total = total.Add(line.Amount().Amount())
		}
	}
	return total
}

// TotalCredits returns the sum of all credit line amounts.
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.lines {
		if !line.IsDebit() {
			total = total.Add(line.Amount().Amount())
		}
	}
	return total
}

// IsBalanced reports whether total debits equal total credits.
// Always true for entries created through NewJournalEntry.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Equal(e.TotalCredits())
}

// setID sets the entry's unique identifier with validation.
// This is an internal setter used during entry construction.
func (e *JournalEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	e.id = id
	return nil
}

// setDescription sets the entry's description with validation.
// This is an internal setter used during entry construction.
func (e *JournalEntry) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	e.description = description
	return nil
}

// setLines sets the entry's lines, checking the balance invariant.
// This is an internal setter used during entry construction.
func (e *JournalEntry) setLines(lines []EntryLine) error {
	if len(lines) < 2 {
		return ErrEntryLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	e.lines = append([]EntryLine(nil), lines...)
	if !e.IsBalanced() {
		debits, credits := e.TotalDebits(), e.TotalCredits()
		e.lines = nil
		return fmt.Errorf("%w: debits %s, credits %s", ErrEntryIsNotBalanced, debits, credits)
	}
	return nil
}
