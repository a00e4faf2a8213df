package quarterly

import (
	"fmt"
	"time"
)

// StartOfQuarter returns the first instant (local midnight on the 1st of
// January, April, July or October) of the quarter containing t. The
// result is expressed in t's location, so a fixed UTC offset is
// preserved through the computation.
//
// Panics with a *BoundaryError (ErrCodeOutOfRange) if the result would
// leave the representable time range, which can only happen within one
// quarter of time.Time's extremes.
func StartOfQuarter(t time.Time) time.Time {
	y, m, _ := t.Date()
	return mustBoundaryDate(y, quarterStartMonth(m), t.Location())
}

// EndOfQuarter returns the last representable instant still inside the
// quarter containing t: exactly one nanosecond before the next quarter's
// start. The result is expressed in t's location.
//
// Panics like StartOfQuarter on range overflow.
func EndOfQuarter(t time.Time) time.Time {
	return StartOfNextQuarter(t).Add(-time.Nanosecond)
}

// StartOfNextQuarter returns StartOfQuarter(t) advanced by exactly three
// calendar months, rolling into the next year after Q4.
//
// Panics like StartOfQuarter on range overflow.
func StartOfNextQuarter(t time.Time) time.Time {
	y, m, _ := t.Date()
	y2, m2 := addQuarters(y, quarterStartMonth(m), 1)
	return mustBoundaryDate(y2, m2, t.Location())
}

// StartOfPreviousQuarter returns StartOfQuarter(t) moved back by exactly
// three calendar months, rolling into the previous year before Q1.
//
// Panics like StartOfQuarter on range overflow.
func StartOfPreviousQuarter(t time.Time) time.Time {
	y, m, _ := t.Date()
	y2, m2 := addQuarters(y, quarterStartMonth(m), -1)
	return mustBoundaryDate(y2, m2, t.Location())
}

// EndOfNextQuarter returns the last representable instant of the quarter
// after the one containing t: one nanosecond before that quarter's
// successor starts.
//
// Panics like StartOfQuarter on range overflow.
func EndOfNextQuarter(t time.Time) time.Time {
	y, m, _ := t.Date()
	y2, m2 := addQuarters(y, quarterStartMonth(m), 2)
	return mustBoundaryDate(y2, m2, t.Location()).Add(-time.Nanosecond)
}

// EndOfPreviousQuarter returns the last representable instant of the
// quarter before the one containing t, i.e. one nanosecond before
// StartOfQuarter(t).
//
// Panics like StartOfQuarter on range overflow.
func EndOfPreviousQuarter(t time.Time) time.Time {
	y, m, _ := t.Date()
	return mustBoundaryDate(y, quarterStartMonth(m), t.Location()).Add(-time.Nanosecond)
}

// Quarter identifies a calendar quarter by year and index (1-4).
// The zero value is not a valid quarter.
type Quarter struct {
	Year  int
	Index int
}

// QuarterOf returns the quarter containing t, read from t's own
// wall-clock fields.
func QuarterOf(t time.Time) Quarter {
	y, m, _ := t.Date()
	return Quarter{Year: y, Index: (int(m)-1)/3 + 1}
}

// String formats the quarter as "2024-Q1".
func (q Quarter) String() string {
	return fmt.Sprintf("%d-Q%d", q.Year, q.Index)
}

// Next returns the following quarter, rolling Q4 into Q1 of the next year.
func (q Quarter) Next() Quarter {
	if q.Index >= 4 {
		return Quarter{Year: q.Year + 1, Index: 1}
	}
	return Quarter{Year: q.Year, Index: q.Index + 1}
}

// Previous returns the preceding quarter, rolling Q1 into Q4 of the
// previous year.
func (q Quarter) Previous() Quarter {
	if q.Index <= 1 {
		return Quarter{Year: q.Year - 1, Index: 4}
	}
	return Quarter{Year: q.Year, Index: q.Index - 1}
}

// StartIn returns the quarter's first instant in loc, resolved through
// the zone's rules (see the package DST policy).
//
// Fails with ErrCodeInvalidZone if loc is nil and with ErrCodeOutOfRange
// if the index is outside 1-4 or the result leaves the representable
// time range.
func (q Quarter) StartIn(loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, newNilZoneError()
	}
	if q.Index < 1 || q.Index > 4 {
		return time.Time{}, &BoundaryError{
			Code:    ErrCodeOutOfRange,
			Message: fmt.Sprintf("quarter index %d outside [1,4]", q.Index),
		}
	}
	return boundaryDate(q.Year, time.Month((q.Index-1)*3+1), loc)
}

// EndIn returns the quarter's last representable instant in loc: one
// nanosecond before the next quarter starts in that zone. Error
// conditions match StartIn.
func (q Quarter) EndIn(loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, newNilZoneError()
	}
	next, err := q.Next().StartIn(loc)
	if err != nil {
		return time.Time{}, err
	}
	return next.Add(-time.Nanosecond), nil
}

// Contains reports whether t's wall-clock fields fall inside q.
func (q Quarter) Contains(t time.Time) bool {
	return QuarterOf(t) == q
}

// quarterStartMonth returns the first month of the quarter containing m.
func quarterStartMonth(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

// addQuarters shifts a quarter start month by n quarters, carrying into
// adjacent years. startMonth must be a quarter start month.
func addQuarters(year int, startMonth time.Month, n int) (int, time.Month) {
	months := int(startMonth) - 1 + n*3
	y := year + months/12
	m := months % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, time.Month(m + 1)
}

// boundaryDate builds local midnight on the 1st of month in loc and
// verifies the calendar fields survived normalization. A mismatch means
// the requested boundary wrapped around time.Time's representable range.
func boundaryDate(year int, month time.Month, loc *time.Location) (time.Time, error) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	y2, m2, _ := t.Date()
	if y2 != year || m2 != month {
		return time.Time{}, newOutOfRangeError(year, "quarter boundary outside representable time range")
	}
	return t, nil
}

// mustBoundaryDate is boundaryDate for the value-returning surface,
// where a wrapped result is a domain violation.
func mustBoundaryDate(year int, month time.Month, loc *time.Location) time.Time {
	t, err := boundaryDate(year, month, loc)
	if err != nil {
		panic(err)
	}
	return t
}
