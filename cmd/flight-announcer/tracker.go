package main

import (
	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
)

type event int

const (
	noEvent event = iota
	detected
	stillDetected
	noLongerDetected
)

func (e event) String() string {
	switch e {
	case noEvent:
		return "none"
	case detected:
		return "FLIGHT DETECTED"
	case stillDetected:
		return "FLIGHT STILL DETECTED"
	case noLongerDetected:
		return "FLIGHT NO LONGER DETECTED"
	default:
		panic("unknown event")
	}
}

// tracker turns successive polls into detection edges. Another aircraft
// replacing the current one is a new detection.
type tracker struct {
	current   *flight.Record
	detection uint64
}

func (t *tracker) observe(f *flight.Record) event {
	prev := t.current
	t.current = f

	switch {
	case f == nil && prev == nil:
		return noEvent
	case f == nil:
		return noLongerDetected
	case prev != nil && prev.Same(*f):
		return stillDetected
	default:
		t.detection++
		return detected
	}
}
