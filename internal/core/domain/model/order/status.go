package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions that governs
// which mutations are permitted on the order.
//
// State transitions:
//
//	New ──(update)──> Accepted <──> Failed
//	        │                (accept/fail)
//	        └───────> Failed
//
// An order starts in New. While New it may be freely updated, including
// setting the status to Accepted or Failed. Once the status leaves New,
// updates are blocked entirely and the only remaining transitions are
// Failed -> Accepted (accept) and Accepted -> Failed (fail). No transition
// leads back to New.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	// Orders in this status may be updated and deleted.
	New

	// Accepted indicates the order has been accepted.
	// Accepted orders cannot be updated or deleted; they may only be failed.
	Accepted

	// Failed indicates the order has been failed.
	// Failed orders cannot be updated; they may be deleted or accepted.
	Failed
)

var (
	// ErrUpdateNotAllowed is returned when updating an order whose status has left New.
	ErrUpdateNotAllowed = fmt.Errorf("you cannot change data with status 'failed' or 'accepted'")

	// ErrDeleteNotAllowed is returned when deleting an accepted order.
	ErrDeleteNotAllowed = fmt.Errorf("you cannot delete data with status 'accepted'")

	// ErrAcceptNotAllowed is returned when accepting an order that is still New.
	ErrAcceptNotAllowed = fmt.Errorf("you cannot accept the order with status 'new'")

	// ErrFailNotAllowed is returned when failing an order that is still New.
	ErrFailNotAllowed = fmt.Errorf("you cannot fail the order with status 'new'")
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		New:      "new",
		Accepted: "accepted",
		Failed:   "failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:      "new",
		Accepted: "accepted",
		Failed:   "failed",
	}
}

// StatusFromString parses a wire status name ("new", "accepted", "failed")
// into a Status. Returns a validation error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are New, Accepted and Failed; Unknown and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("new", "accepted", "failed").
// Invalid values render as "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateUpdate checks whether an order in this status may be updated.
// Only New orders are mutable; the check reads the current stored status
// regardless of what the update would set it to.
func (s Status) ValidateUpdate() error {
	if s != New {
		return ErrUpdateNotAllowed
	}
	return nil
}

// ValidateDelete checks whether an order in this status may be deleted.
// Accepted orders cannot be deleted; New and Failed orders can.
func (s Status) ValidateDelete() error {
	if s == Accepted {
		return ErrDeleteNotAllowed
	}
	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Failed -> Accepted
//   - Accepted -> Accepted (no-op)
//
// Accepting a New order is not allowed and returns ErrAcceptNotAllowed.
func (s Status) Accept() (Status, error) {
	switch s {
	case Failed, Accepted:
		return Accepted, nil
	case New:
		return Unknown, ErrAcceptNotAllowed
	case Unknown:
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%d is not a valid status to accept", s))
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Accepted -> Failed
//   - Failed -> Failed (no-op)
//
// Failing a New order is not allowed and returns ErrFailNotAllowed.
func (s Status) Fail() (Status, error) {
	switch s {
	case Accepted, Failed:
		return Failed, nil
	case New:
		return Unknown, ErrFailNotAllowed
	case Unknown:
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%d is not a valid status to fail", s))
}
