package timeutil

import "time"

// Intersects reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share a non-empty range. Intervals that only touch at a
// boundary do not intersect.
func Intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Within reports whether t lies in the closed range [from, to]. A zero bound
// is unbounded on that side.
func Within(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// Touches reports whether the closed ranges [aStart, aEnd] and [from, to]
// have any instant in common. Zero bounds on the second range are unbounded.
func Touches(aStart, aEnd, from, to time.Time) bool {
	if !from.IsZero() && aEnd.Before(from) {
		return false
	}
	if !to.IsZero() && aStart.After(to) {
		return false
	}
	return true
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
