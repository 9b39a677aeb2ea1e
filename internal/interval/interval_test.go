package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.February, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo time.Time
		want                   bool
	}{
		{"identical ranges", day(6), day(7), day(6), day(7), true},
		{"contained", day(1), day(10), day(4), day(5), true},
		{"partial overlap left", day(1), day(5), day(4), day(8), true},
		{"partial overlap right", day(4), day(8), day(1), day(5), true},
		{"checkout day equals checkin day", day(1), day(5), day(5), day(9), false},
		{"checkin day equals checkout day", day(5), day(9), day(1), day(5), false},
		{"disjoint", day(1), day(3), day(10), day(12), false},
		{"single night shared", day(4), day(6), day(5), day(9), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Overlaps(tc.aFrom, tc.aTo, tc.bFrom, tc.bTo))
			// The predicate is symmetric in the two ranges.
			require.Equal(t, tc.want, Overlaps(tc.bFrom, tc.bTo, tc.aFrom, tc.aTo))
			// And agrees with the half-open definition.
			want := !(!tc.aTo.After(tc.bFrom) || !tc.aFrom.Before(tc.bTo))
			require.Equal(t, want, Overlaps(tc.aFrom, tc.aTo, tc.bFrom, tc.bTo))
		})
	}
}

func TestNights(t *testing.T) {
	require.Equal(t, 1, Nights(day(6), day(7)))
	require.Equal(t, 5, Nights(day(1), day(6)))
	require.Equal(t, 0, Nights(day(7), day(7)))
	require.Equal(t, 0, Nights(day(7), day(6)))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, time.February, 6, 15, 4, 5, 0, time.UTC)
	require.Equal(t, day(6), DateOnly(ts))
}
