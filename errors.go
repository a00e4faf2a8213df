package quarterly

import (
	"errors"
	"fmt"
)

// BoundaryErrorCode categorizes boundary computation errors.
type BoundaryErrorCode string

const (
	// ErrCodeInvalidZone indicates a nil or unresolvable time zone.
	ErrCodeInvalidZone BoundaryErrorCode = "INVALID_ZONE"

	// ErrCodeOutOfRange indicates the result would leave the
	// representable timestamp domain.
	ErrCodeOutOfRange BoundaryErrorCode = "OUT_OF_RANGE"
)

// BoundaryError represents a failed boundary computation.
//
// There are exactly two failure modes: an invalid time-zone reference
// (nil *time.Location or an unresolvable zone name) and a result outside
// the representable timestamp domain. Errors are returned synchronously
// to the caller; nothing is retried, logged or swallowed internally.
type BoundaryError struct {
	// Code identifies the error category.
	Code BoundaryErrorCode

	// Message is a human-readable description.
	Message string

	// Zone names the offending zone, when one was involved.
	Zone string

	// Err is the underlying error, if any (e.g. the zone database
	// lookup failure).
	Err error
}

// Error implements the error interface.
func (e *BoundaryError) Error() string {
	if e.Zone != "" {
		return fmt.Sprintf("%s: %s (zone=%q)", e.Code, e.Message, e.Zone)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *BoundaryError) Unwrap() error {
	return e.Err
}

// IsInvalidZone returns true if the error is an invalid-zone error.
// Uses errors.As to handle wrapped errors.
func IsInvalidZone(err error) bool {
	var be *BoundaryError
	if errors.As(err, &be) {
		return be.Code == ErrCodeInvalidZone
	}
	return false
}

// IsOutOfRange returns true if the error is an out-of-range error.
// Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var be *BoundaryError
	if errors.As(err, &be) {
		return be.Code == ErrCodeOutOfRange
	}
	return false
}

// newNilZoneError creates a BoundaryError for a nil *time.Location.
func newNilZoneError() *BoundaryError {
	return &BoundaryError{
		Code:    ErrCodeInvalidZone,
		Message: "time zone location is nil",
	}
}

// newUnknownZoneError creates a BoundaryError for an unresolvable zone name.
func newUnknownZoneError(zone string, err error) *BoundaryError {
	return &BoundaryError{
		Code:    ErrCodeInvalidZone,
		Message: "unknown time zone",
		Zone:    zone,
		Err:     err,
	}
}

// newOutOfRangeError creates a BoundaryError for a result that left the
// representable timestamp domain.
func newOutOfRangeError(year int, message string) *BoundaryError {
	return &BoundaryError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("%s (year=%d)", message, year),
	}
}
