// Package interval holds the date-range overlap predicate every in-process
// availability check delegates to. The SQL overlap queries use the equivalent
// expression NOT (res_date_to <= $from OR res_date_from >= $to).
package interval

import "time"

// Overlaps reports whether [aFrom, aTo) and [bFrom, bTo) share at least one
// night. Half-open semantics: a stay ending on day X and a stay starting on
// day X do not overlap.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !(!aTo.After(bFrom) || !aFrom.Before(bTo))
}

// Nights returns the number of nights in [from, to), zero if the range is
// empty or inverted.
func Nights(from, to time.Time) int {
	n := int(to.Sub(from).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// DateOnly truncates t to midnight UTC so stay boundaries compare as dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
