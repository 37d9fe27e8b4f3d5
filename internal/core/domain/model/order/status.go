package order

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	draft ──────> confirmed ──────> shipped
//	  │               │
//	  └───────────────┴──────> cancelled
//
// Shipped and cancelled are terminal states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Items may be freely replaced while draft.
	Draft

	// Confirmed indicates the order has been committed: stock was decremented
	// exactly once when this status was first reached.
	Confirmed

	// Shipped indicates the order left the warehouse. Terminal.
	Shipped

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

var (
	// ErrInvalidTransition indicates a status change not permitted by the
	// transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCancelledOrderIsImmutable indicates an attempt to move a cancelled
	// order to any other status. This guard is enforced independently of the
	// transition table on both the full-order update path and the status-only
	// path.
	ErrCancelledOrderIsImmutable = errors.New("a cancelled order cannot be changed")
)

// InvalidTransitionError reports a status change that the transition table
// does not allow, naming both the current and the requested state.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given states.
func NewInvalidTransitionError(from Status, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Cancelled: "cancelled",
	}
}

// getAllowedTransitions returns the transition table: for each current status,
// the set of statuses it may move to.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Confirmed, Cancelled},
		Confirmed: {Shipped, Cancelled},
		Shipped:   {},
		Cancelled: {},
	}
}

// StatusFromString parses a status from its wire representation
// ("draft", "confirmed", "shipped", "cancelled").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to next. A no-change "transition" is not covered by the
// table; callers treat it as a no-op, not a transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateChangeTo checks a requested status change against both the explicit
// cancelled guard and the transition table. Requesting the current status is
// accepted as a no-op. Any other disallowed change returns
// InvalidTransitionError naming the current and requested states.
func (s Status) ValidateChangeTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if next == s {
		return nil
	}

	// Independent guard, redundant with the table but enforced explicitly on
	// every status write path.
	if s == Cancelled {
		return ErrCancelledOrderIsImmutable
	}

	if !s.CanTransitionTo(next) {
		return NewInvalidTransitionError(s, next)
	}

	return nil
}
