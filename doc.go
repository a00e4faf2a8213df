// Package quarterly computes calendar quarter boundaries for timestamps.
//
// Quarters begin on the 1st of January, April, July and October at local
// wall-clock midnight. The quarter index for month M (1-12) is (M-1)/3,
// so the start month of the containing quarter is index*3 + 1.
//
// The package exposes two surfaces:
//
//   - Offset-preserving functions (StartOfQuarter, EndOfQuarter and their
//     next/previous variants) operate on the wall-clock fields of the
//     input and return a time.Time in the same location, so a timestamp
//     carrying a fixed UTC offset keeps that offset through the
//     arithmetic.
//
//   - Zone-aware functions (StartOfZoneQuarter and friends) take an
//     instant plus a *time.Location and compute the boundary in that
//     zone's wall-clock domain. The instant is normalized to UTC,
//     converted to the zone's local representation, the quarter
//     arithmetic is performed purely on local calendar fields, and the
//     resulting wall-clock moment is resolved back through the zone's
//     rules to a UTC instant. Boundaries are never computed by adding a
//     fixed duration to a UTC instant, so results stay correct across
//     DST transitions and year rollovers.
//
// End-of-quarter values are always exactly one nanosecond (the smallest
// unit a time.Time can represent) before the following quarter's start.
//
// DST disambiguation policy: when a local quarter-boundary midnight falls
// inside a spring-forward gap, the boundary resolves forward by the width
// of the gap (the first valid instant after the missing interval); when
// it falls inside a fall-back overlap, it resolves to the instant
// time.Date's normalization selects for the ambiguous wall-clock moment
// (Go leaves that choice unspecified). Both cases delegate to time.Date
// and are applied unconditionally; in practice no tzdata zone transitions
// exactly at a quarter-start midnight.
//
// Every function is pure and safe for unlimited concurrent use. The only
// shared resource is the read-only platform time-zone database consulted
// through *time.Location.
package quarterly
