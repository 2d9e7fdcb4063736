package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Paid ──> Shipped
//	   │          │         │
//	   └──────────┼─────────┘
//	              v
//	           Canceled
//
// Forward moves are checked by rank only, so Pending -> Shipped is accepted.
// Canceled has no outgoing transitions. Cancel itself is stricter than
// UpdateStatus and only accepts Pending orders.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a placed order.
	Pending

	// Paid indicates the order has been paid. Lines can still be changed.
	Paid

	// Shipped indicates the order has left the warehouse. Lines are frozen.
	Shipped

	// Canceled is the terminal status. The order is fully frozen.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Paid:     "PAID",
		Shipped:  "SHIPPED",
		Canceled: "CANCELED",
	}
}

// getStatusRanks is the ordering used by TransitionTo. It is keyed by Status
// rather than by declaration order so renaming or reordering constants cannot
// silently change transition rules.
func getStatusRanks() map[Status]int {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]int{
		Pending:  0,
		Paid:     1,
		Shipped:  2,
		Canceled: 3,
	}
}

// ParseStatus converts the wire/persistence name of a status (case-insensitive)
// into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that s is one of Pending, Paid, Shipped or Canceled.
func (s Status) Validate() error {
	if s.Rank() < 0 {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanModifyLines reports whether order lines may be added, updated or removed.
func (s Status) CanModifyLines() bool {
	return s == Pending || s == Paid
}

// CanBeCanceled reports whether Cancel accepts the status.
func (s Status) CanBeCanceled() bool {
	return s == Pending || s == Canceled
}

// Rank returns the position of s in the lifecycle, or -1 for an unknown status.
func (s Status) Rank() int {
	if rank, ok := getStatusRanks()[s]; ok {
		return rank
	}
	return -1
}

// Cancel transitions the status to Canceled.
//
// Paid and Shipped orders cannot be canceled. Canceling a Canceled order is
// accepted and yields Canceled again.
func (s Status) Cancel() (Status, error) {
	if !s.CanBeCanceled() {
		return Unknown, &OrderCannotBeCanceledError{Status: s}
	}
	return Canceled, nil
}

// TransitionTo validates a move from s to next and returns next.
//
// Rules:
//   - nothing leaves Canceled
//   - Canceled is reachable from every other status
//   - any other target must rank strictly higher than the current status
func (s Status) TransitionTo(next Status) (Status, error) {
	currentRank, nextRank := s.Rank(), next.Rank()
	if currentRank < 0 || nextRank < 0 || s == Canceled {
		return Unknown, &InvalidStatusTransitionError{From: s, To: next}
	}

	if next == Canceled {
		return next, nil
	}

	if nextRank <= currentRank {
		return Unknown, &InvalidStatusTransitionError{From: s, To: next}
	}

	return next, nil
}
