package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// CancelStaleOrdersCommand represents a request to cancel all orders that
// have been sitting in the created status for longer than the given age.
// Issued periodically by the background expiry job.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to expire stale orders.
// Validates that the maximum age is positive.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return CancelStaleOrdersCommand{}, ErrMaxAgeIsInvalid
	}

	return CancelStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may stay in the created status before it
// is expired.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
