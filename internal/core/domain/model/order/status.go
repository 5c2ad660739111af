package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	created ──> confirmed ──> shipped
//	   │            │
//	   └──────┬─────┘
//	          v
//	      cancelled
//
// shipped and cancelled are terminal: no further transitions are allowed.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Items can be added and removed only in this status.
	Created

	// Confirmed indicates the order has been accepted and stock reserved.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	// This is a final state with no further transitions allowed.
	Shipped

	// Cancelled indicates the order was abandoned or rejected.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// Operation names used in transition errors.
const (
	opConfirm    = "confirm"
	opShip       = "ship"
	opCancel     = "cancel"
	opAddItem    = "add item"
	opRemoveItem = "remove item"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a Status from its string representation, e.g. from
// a query parameter or a persisted record. Returns an error for unrecognized
// values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: created, confirmed, shipped, cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - created -> confirmed
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, *errs.InvalidTransitionError) if confirmation is not allowed from the current status
func (s Status) Confirm() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError(opConfirm, s.String())
	}
	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - confirmed -> shipped
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, *errs.InvalidTransitionError) if shipping is not allowed from the current status
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidTransitionError(opShip, s.String())
	}
	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - created -> cancelled
//   - confirmed -> cancelled
//
// Shipped orders cannot be cancelled, and cancelling twice is rejected.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, *errs.InvalidTransitionError) if cancellation is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Confirmed {
		return 0, errs.NewInvalidTransitionError(opCancel, s.String())
	}
	return Cancelled, nil
}
