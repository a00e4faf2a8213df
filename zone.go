package quarterly

import "time"

// StartOfZoneQuarter returns the UTC instant at which the quarter
// containing u begins in loc.
//
// The computation never adds a fixed duration to a UTC instant. Instead
// u is normalized to UTC, converted to loc's wall-clock representation,
// the quarter start is computed purely on local calendar fields, and the
// resulting local midnight is resolved back through the zone's rules
// (see the package DST policy for gap and overlap midnights).
//
// Fails with ErrCodeInvalidZone if loc is nil, and with
// ErrCodeOutOfRange if the boundary leaves the representable time range.
func StartOfZoneQuarter(u time.Time, loc *time.Location) (time.Time, error) {
	return zoneBoundary(u, loc, 0, false)
}

// EndOfZoneQuarter returns the last representable UTC instant still
// inside the quarter containing u in loc: one nanosecond before the next
// quarter begins in that zone. Error conditions match StartOfZoneQuarter.
func EndOfZoneQuarter(u time.Time, loc *time.Location) (time.Time, error) {
	return zoneBoundary(u, loc, 1, true)
}

// StartOfNextZoneQuarter returns the UTC instant at which the quarter
// after the one containing u begins in loc, three calendar months past
// the current quarter's local start. Correct across year rollover and
// DST transitions. Error conditions match StartOfZoneQuarter.
func StartOfNextZoneQuarter(u time.Time, loc *time.Location) (time.Time, error) {
	return zoneBoundary(u, loc, 1, false)
}

// StartOfPreviousZoneQuarter returns the UTC instant at which the
// quarter before the one containing u began in loc. Error conditions
// match StartOfZoneQuarter.
func StartOfPreviousZoneQuarter(u time.Time, loc *time.Location) (time.Time, error) {
	return zoneBoundary(u, loc, -1, false)
}

// EndOfNextZoneQuarter returns the last representable UTC instant of the
// quarter after the one containing u in loc. Error conditions match
// StartOfZoneQuarter.
func EndOfNextZoneQuarter(u time.Time, loc *time.Location) (time.Time, error) {
	return zoneBoundary(u, loc, 2, true)
}

// EndOfPreviousZoneQuarter returns the last representable UTC instant of
// the quarter before the one containing u in loc: one nanosecond before
// the current quarter's local start. Error conditions match
// StartOfZoneQuarter.
func EndOfPreviousZoneQuarter(u time.Time, loc *time.Location) (time.Time, error) {
	return zoneBoundary(u, loc, 0, true)
}

// zoneBoundary computes the start of the quarter shift quarters away
// from the one containing u in loc's wall-clock domain, optionally
// stepping back one nanosecond to yield the preceding quarter's end.
func zoneBoundary(u time.Time, loc *time.Location, shift int, end bool) (time.Time, error) {
	if loc == nil {
		return time.Time{}, newNilZoneError()
	}
	local := u.UTC().In(loc)
	y, m, _ := local.Date()
	y2, m2 := addQuarters(y, quarterStartMonth(m), shift)
	boundary, err := boundaryDate(y2, m2, loc)
	if err != nil {
		return time.Time{}, err
	}
	boundary = boundary.UTC()
	if end {
		boundary = boundary.Add(-time.Nanosecond)
	}
	return boundary, nil
}
