package domain

import (
	"errors"
	"fmt"
)

// ConflictType is the closed set of business reasons a request may be
// rejected, as opposed to a missing entity. Callers branch on the tag,
// never on the message text.
type ConflictType string

const (
	ConflictInvalidTime          ConflictType = "INVALID_TIME"
	ConflictPastTime             ConflictType = "PAST_TIME"
	ConflictTooSoon              ConflictType = "TOO_SOON"
	ConflictTooFar               ConflictType = "TOO_FAR"
	ConflictOutsideHours         ConflictType = "OUTSIDE_OPERATING_HOURS"
	ConflictTableOccupied        ConflictType = "TABLE_OCCUPIED"
	ConflictTableMaintenance     ConflictType = "TABLE_MAINTENANCE"
	ConflictTimeOverlap          ConflictType = "TIME_OVERLAP"
	ConflictCapacityExceeded     ConflictType = "CAPACITY_EXCEEDED"
	ConflictGuestCountRequired   ConflictType = "GUEST_COUNT_REQUIRED"
	ConflictGuestCountInvalid    ConflictType = "GUEST_COUNT_INVALID"
	ConflictNoTableSelected      ConflictType = "NO_TABLE_SELECTED"
	ConflictAlreadyWaitlisted    ConflictType = "ALREADY_WAITLISTED"
	ConflictInvalidWaitlistState ConflictType = "INVALID_WAITLIST_STATE"
)

// ConflictError is a typed business-rule failure carrying a ConflictType tag
// and a human-readable message.
type ConflictError struct {
	Code    ConflictType
	Message string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict [%s]: %s", e.Code, e.Message)
}

// NewConflict creates a ConflictError with the given tag and message
func NewConflict(code ConflictType, format string, v ...interface{}) *ConflictError {
	return &ConflictError{Code: code, Message: fmt.Sprintf(format, v...)}
}

// AsConflict unwraps a ConflictError from err, if any
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsConflictType reports whether err is a ConflictError with the given tag
func IsConflictType(err error, code ConflictType) bool {
	ce, ok := AsConflict(err)
	return ok && ce.Code == code
}
