package board

import (
	"strconv"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/weather"
)

// Mode selects what the panel is about.
type Mode int

const (
	// Weather is the holding screen while the watched runway takes no arrivals.
	Weather Mode = iota
	// Flight shows the aircraft on approach.
	Flight
	// NoTraffic means the watched runway is active but nothing is on approach.
	NoTraffic
)

func (m Mode) String() string {
	switch m {
	case Weather:
		return "weather"
	case Flight:
		return "flight"
	case NoTraffic:
		return "no-traffic"
	default:
		panic("unknown mode " + strconv.Itoa(int(m)))
	}
}

// ModeFor picks the mode for the latest data.
func ModeFor(f *flight.Record, w *weather.Record, watchedRunway string) Mode {
	if f != nil {
		return Flight
	}
	if w != nil && weather.RunwayMatches(w.ArrivalsRunway, watchedRunway) {
		return NoTraffic
	}
	return Weather
}
