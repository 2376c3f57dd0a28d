// Package alternate picks which of several candidates is shown at an instant.
// The choice only depends on the time elapsed since a reference, so any number of
// queries inside one dwell window agree with each other.
package alternate

import "time"

// Index returns floor((now-ref)/dwell) mod n. The window switches as soon as
// now reaches a boundary, so at exactly ref+dwell the second candidate is current.
func Index(n int, dwell time.Duration, now, ref time.Time) int {
	if n <= 0 {
		panic("alternate: no candidates")
	}
	if dwell <= 0 {
		panic("alternate: dwell must be positive")
	}

	w := floorDiv(now.Sub(ref), dwell)
	ix := int(w % int64(n))
	if ix < 0 {
		ix += n
	}
	return ix
}

// Pick returns the current candidate.
func Pick(candidates []string, dwell time.Duration, now, ref time.Time) string {
	return candidates[Index(len(candidates), dwell, now, ref)]
}

// Segment handles cycles made of unequal segments: it returns the index of the
// segment current at now and how far into it now is.
func Segment(durations []time.Duration, now, ref time.Time) (int, time.Duration) {
	if len(durations) == 0 {
		panic("alternate: no segments")
	}

	var cycle time.Duration
	for _, d := range durations {
		if d <= 0 {
			panic("alternate: segment duration must be positive")
		}
		cycle += d
	}

	e := now.Sub(ref) % cycle
	if e < 0 {
		e += cycle
	}
	for i, d := range durations {
		if e < d {
			return i, e
		}
		e -= d
	}

	// unreachable, e < cycle
	panic("alternate: segment overflow")
}

func floorDiv(a, b time.Duration) int64 {
	q := int64(a / b)
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
