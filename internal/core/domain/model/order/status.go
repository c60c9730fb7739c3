package order

import (
	"fmt"

	"skybite/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit transition table; any transition not listed is
// rejected with a typed error instead of being written through.
//
// State transitions:
//
//	Placed ──> Accepted ──> Preparing ──> OutForDelivery ──> Delivered
//	   │           │            │
//	   └───────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Placed is the initial status after a successful checkout.
	Placed

	// Accepted means the restaurant has confirmed the order.
	Accepted

	// Preparing means the kitchen is working on the order.
	Preparing

	// OutForDelivery means the assigned carrier has picked the order up.
	OutForDelivery

	// Delivered is the successful terminal status. Reaching it releases the
	// bound carrier back to the available pool.
	Delivered

	// Cancelled is the unsuccessful terminal status. Reaching it also
	// releases the bound carrier.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		Placed:         "Placed",
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Placed",
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getTransitions returns the allowed forward transitions per status.
// Terminal statuses have no entries.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Accepted, Cancelled},
		Accepted:       {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
	}
}

// StatusFromString parses the wire representation of an order status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("orderStatus",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is expected from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition s -> next, returning the
// new status. Illegal transitions, including any move out of a terminal
// status, are rejected.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s -> %s is not a valid transition", s, next))
	}
	return next, nil
}
