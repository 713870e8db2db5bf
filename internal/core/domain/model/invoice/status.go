package invoice

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the position of an invoice in the fulfillment workflow.
//
// State transitions:
//
//	ToTake ──> Taking ──> ToVerify ──> Verifying ──> Packed
//
// Every edge is owned by one method below; there is no other way to change a
// status, and Packed is terminal.
type Status int

const (
	// Unknown catches uninitialized values. It is never persisted.
	Unknown Status = iota

	// ToTake is the initial status of a freshly billed invoice.
	ToTake

	// Taking means a staff member is picking the goods. The invoice occupies
	// one of the taker's workload slots.
	Taking

	// ToVerify means picking finished and the invoice waits for a second person.
	ToVerify

	// Verifying means a different staff member is double-checking and boxing.
	// The invoice occupies one of the verifier's workload slots.
	Verifying

	// Packed is the terminal status. The invoice has joined a feedback aggregate.
	Packed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		ToTake:    "TO_TAKE",
		Taking:    "TAKING",
		ToVerify:  "TO_VERIFY",
		Verifying: "VERIFYING",
		Packed:    "PACKED",
	}
}

// LegacyStatuses maps the older status vocabulary still found in stored rows
// onto the canonical states. Used by ParseStatus and the one-time rewrite of
// old rows.
func LegacyStatuses() map[string]Status {
	return map[string]Status{
		"TAKING_IN_PROGRESS": Taking,
		"TAKING_DONE":        ToVerify,
		"VERIFY_IN_PROGRESS": Verifying,
		"COMPLETED":          Packed,
	}
}

// Statuses returns the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{ToTake, Taking, ToVerify, Verifying, Packed}
}

// ParseStatus converts a stored or user-supplied name into a Status.
// Matching is case-insensitive. Canonical names are tried first, then the
// legacy vocabulary (TAKING_IN_PROGRESS, TAKING_DONE, VERIFY_IN_PROGRESS,
// COMPLETED).
//
// Returns:
//   - the canonical Status
//   - ValueIsInvalid error for any other input, including "UNKNOWN"
func ParseStatus(raw string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, s := range Statuses() {
		if s.String() == name {
			return s, nil
		}
	}
	if s, ok := LegacyStatuses()[name]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", raw))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < ToTake || s > Packed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name used for persistence and transport.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the status occupies a workload slot.
func (s Status) IsActive() bool {
	return s == Taking || s == Verifying
}

// IsOutstanding reports whether the invoice still needs work.
func (s Status) IsOutstanding() bool {
	return s != Packed
}

// StartTaking transitions ToTake -> Taking.
//
// Returns:
//   - (Taking, nil) from ToTake
//   - (Unknown, InvalidTransition) from any other status
func (s Status) StartTaking() (Status, error) {
	return s.transition(ToTake, Taking)
}

// MarkTaken transitions Taking -> ToVerify.
func (s Status) MarkTaken() (Status, error) {
	return s.transition(Taking, ToVerify)
}

// StartVerify transitions ToVerify -> Verifying.
func (s Status) StartVerify() (Status, error) {
	return s.transition(ToVerify, Verifying)
}

// MarkPacked transitions Verifying -> Packed.
func (s Status) MarkPacked() (Status, error) {
	return s.transition(Verifying, Packed)
}

func (s Status) transition(from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), to.String(),
			fmt.Errorf("only %s can move to %s", from, to),
		)
	}
	return to, nil
}
