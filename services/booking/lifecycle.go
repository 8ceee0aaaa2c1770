package booking

import "vendora/models"

// CanTransition encodes the legal booking status transitions: pending may
// move to confirmed, rejected or canceled; all three are terminal.
func CanTransition(from, to models.BookingStatus) bool {
	if from != models.StatusPending {
		return false
	}
	switch to {
	case models.StatusConfirmed, models.StatusRejected, models.StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(s models.BookingStatus) bool {
	switch s {
	case models.StatusConfirmed, models.StatusRejected, models.StatusCanceled:
		return true
	}
	return false
}
