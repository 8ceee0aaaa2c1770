package schedule

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which validation rule fired.
type ErrorKind string

const (
	KindInvalidTimeFormat ErrorKind = "invalidTimeFormat"
	KindDayNotAvailable   ErrorKind = "dayNotAvailable"
	KindOutOfWindow       ErrorKind = "outOfWindow"
	KindInvalidTimeOrder  ErrorKind = "invalidTimeOrder"
	KindEmptySelection    ErrorKind = "emptySelection"
	KindNoDaysSelected    ErrorKind = "noDaysSelected"
	KindMissingStartDate  ErrorKind = "missingStartDate"
	KindInvalidWeekCount  ErrorKind = "invalidWeekCount"
	KindMissingTimeSlot   ErrorKind = "missingTimeSlot"
	KindDuplicateEntry    ErrorKind = "duplicateEntry"
)

// ValidationError is a typed validation failure. Messages name the offending
// day or time so callers can surface them to users verbatim.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(kind ErrorKind, format string, args ...any) error {
	return &ValidationError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the error kind, or "" for non-validation errors.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
