package booking

import (
	"errors"
	"fmt"
)

// SubmissionError is returned when a locally valid request fails at the
// persistence boundary.
type SubmissionError struct {
	Code    string
	Message string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewSubmissionError wraps a persistence failure.
func NewSubmissionError(msg string) error {
	return &SubmissionError{Code: "bookingSubmissionFailed", Message: msg}
}

// NewSlotTakenError reports that another booking already holds one of the
// requested occurrences.
func NewSlotTakenError(msg string) error {
	return &SubmissionError{Code: "slotTaken", Message: msg}
}

// NewForbiddenError reports that the caller does not own the resource the
// action targets.
func NewForbiddenError(msg string) error {
	return &SubmissionError{Code: "forbidden", Message: msg}
}

// TransitionError is returned when a status change is not permitted by the
// booking lifecycle.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// IsSlotTaken reports whether err is a slot-conflict submission error.
func IsSlotTaken(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se) && se.Code == "slotTaken"
}

// IsForbidden reports whether err is an ownership failure.
func IsForbidden(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se) && se.Code == "forbidden"
}
