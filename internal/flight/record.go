// Package flight describes the aircraft seen in the approach corridor.
package flight

import (
	"strconv"
	"strings"
	"time"
)

// Observation is what a flight source reports about one aircraft.
// Empty strings and a nil altitude mean the source did not know the value.
type Observation struct {
	Callsign     string
	TypeCode     string
	Registration string
	Origin       string
	Destination  string
	AltitudeFeet *int
	SeenAt       time.Time
}

// Record is an observation ready to be displayed, with its classification done.
type Record struct {
	Callsign     string
	AircraftType string
	TypeCode     string
	Registration string
	Origin       string
	Destination  string
	Route        string
	AltitudeFeet *int
	SeenAt       time.Time

	IsPrivateJet       bool
	IsHelicopter       bool
	IsCanadianOrigin   bool
	IsCanadianAircraft bool
}

// NewRecord classifies obs.
func NewRecord(obs Observation) Record {
	callsign := strings.ToUpper(strings.TrimSpace(obs.Callsign))
	code := strings.ToUpper(strings.TrimSpace(obs.TypeCode))
	origin := strings.ToUpper(strings.TrimSpace(obs.Origin))
	dest := strings.ToUpper(strings.TrimSpace(obs.Destination))

	r := Record{
		Callsign:     callsign,
		AircraftType: AircraftName(code),
		TypeCode:     code,
		Registration: strings.ToUpper(strings.TrimSpace(obs.Registration)),
		Origin:       origin,
		Destination:  dest,
		Route:        RouteOf(origin, dest),
		AltitudeFeet: obs.AltitudeFeet,
		SeenAt:       obs.SeenAt,
	}
	r.IsHelicopter = IsHelicopter(code)
	r.IsPrivateJet = IsPrivateJet(callsign, code)
	r.IsCanadianOrigin = IsCanadianAirport(origin)
	r.IsCanadianAircraft = IsCanadianAircraft(r.AircraftType) || IsCanadianAircraft(code)

	return r
}

// Altitude returns a pointer to feet, for building observations.
func Altitude(feet int) *int {
	return &feet
}

// RouteOf formats origin and destination like "ORD → LGA".
// Both unknown yields "", one unknown side is shown as N/A.
func RouteOf(origin, dest string) string {
	if origin == "" && dest == "" {
		return ""
	}
	if origin == "" {
		origin = "N/A"
	}
	if dest == "" {
		dest = "N/A"
	}
	return origin + " → " + dest
}

// AltitudeText formats the altitude for display, N/A when unknown.
func (r Record) AltitudeText() string {
	if r.AltitudeFeet == nil {
		return "N/A"
	}
	return strconv.Itoa(*r.AltitudeFeet) + "FT"
}

// Same reports whether two records describe the same aircraft.
func (r Record) Same(o Record) bool {
	if r.Registration != "" && o.Registration != "" {
		return r.Registration == o.Registration
	}
	return r.Callsign == o.Callsign
}
