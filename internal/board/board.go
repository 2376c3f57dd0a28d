// Package board decides what the three rows of the panel show and draws them.
//
// ComputeDisplayState is a function of the time and the data, apart from the
// per-row scroll trackers which only remember when the current text appeared.
// Calling it at any rate with the same input gives the same rows.
package board

import (
	"image/color"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/alternate"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/display"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/scroll"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/weather"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("main.board")

const (
	Unavailable        = "N/A"
	WeatherUnavailable = "Weather unavailable"
	ATISUnavailable    = "ATIS N/A"
	PrivateJetBanner   = "LOOK! IT'S THE 1%!"
	IncomingBanner     = "Incoming Plane"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Row is what one line of the panel shows.
type Row struct {
	Index int
	Text  string
	Color color.RGBA
	Icon  display.Icon
	Align Align
}

type Board struct {
	cfg     Config
	screen  *display.Screen
	clock   Clock
	ref     time.Time
	scrolls [3]*scroll.State
}

// New builds a board drawing on screen. Alternating rows count their windows from the time of creation.
func New(cfg Config, screen *display.Screen, clock Clock) *Board {
	b := &Board{
		cfg:    cfg,
		screen: screen,
		clock:  clock,
		ref:    clock.Now(),
	}
	for i := range b.scrolls {
		b.scrolls[i] = scroll.NewState(cfg.Ticker, cfg.Theme.Font)
	}
	return b
}

func (b *Board) Config() Config {
	return b.cfg
}

// Now is the time of the board clock, frames are drawn at it.
func (b *Board) Now() time.Time {
	return b.clock.Now()
}

// Reference is the instant alternation windows are counted from.
func (b *Board) Reference() time.Time {
	return b.ref
}

// ComputeDisplayState returns the rows shown at now.
func (b *Board) ComputeDisplayState(now time.Time, mode Mode, data Data) [3]Row {
	switch mode {
	case Flight:
		return b.flightRows(now, data.Flight)
	case Weather:
		return b.weatherRows(now, data.Weather)
	case NoTraffic:
		return b.noTrafficRows(now, data.Weather)
	default:
		panic("unknown mode " + mode.String())
	}
}

func (b *Board) flightRows(now time.Time, f *flight.Record) [3]Row {
	c := b.cfg.Theme.Colors
	if f == nil {
		return [3]Row{
			b.row(0, Unavailable, c.Type, display.IconNone, now),
			b.row(1, Unavailable, c.Callsign, display.IconNone, now),
			b.row(2, Unavailable, c.Route, display.IconNone, now),
		}
	}

	typ := orNA(f.AircraftType)
	if f.IsPrivateJet {
		typ = alternate.Pick([]string{typ, PrivateJetBanner}, b.cfg.PrivateJetDwell, now, b.ref)
	}
	typeIcon := display.IconNone
	switch {
	case f.IsCanadianAircraft:
		typeIcon = display.IconCanadaFlag
	case f.IsHelicopter:
		typeIcon = display.IconHelicopter
	}

	routeIcon := display.IconNone
	if f.IsCanadianOrigin {
		routeIcon = display.IconCanadaFlag
	}

	return [3]Row{
		b.row(0, typ, c.Type, typeIcon, now),
		b.row(1, orNA(f.Callsign), c.Callsign, display.IconNone, now),
		b.row(2, orNA(f.Route), c.Route, routeIcon, now),
	}
}

func (b *Board) weatherRows(now time.Time, w *weather.Record) [3]Row {
	c := b.cfg.Theme.Colors
	var rec weather.Record
	if w != nil {
		rec = *w
	}

	banner := alternate.Pick([]string{
		"NO RWY " + b.cfg.WatchedRunway + " ARRIVALS",
		"WEATHER AT " + b.cfg.Airport + ":",
	}, b.cfg.BannerDwell, now, b.ref)

	metar := WeatherUnavailable
	metarIcon := display.IconNone
	if clean := weather.Clean(rec.METAR); clean != "" {
		metar = clean
		metarIcon = conditionIcon(weather.Parse(rec.METAR).Condition)
	}

	return [3]Row{
		b.row(0, banner, c.Banner, display.IconNone, now),
		b.runwayRow(now, rec),
		b.row(2, metar, c.METAR, metarIcon, now),
	}
}

// runwayRow shows the runways for RunwayDwell, then plays the ATIS readout
// once, then goes back to the runways.
func (b *Board) runwayRow(now time.Time, w weather.Record) Row {
	c := b.cfg.Theme.Colors
	runways := "ARR " + orNA(w.ArrivalsRunway) + " DEP " + orNA(w.DeparturesRunway)

	readout := weather.Readout(w.ATISLetter)
	if readout == "" {
		readout = ATISUnavailable
	}
	width := b.cfg.Layout.TextWidth(display.IconNone)
	readoutLen := b.cfg.Readout.CycleLength(b.cfg.Theme.Font, readout, width)
	if readoutLen < b.cfg.RunwayDwell {
		readoutLen = b.cfg.RunwayDwell
	}

	seg, into := alternate.Segment([]time.Duration{b.cfg.RunwayDwell, readoutLen}, now, b.ref)
	if seg == 0 {
		return b.row(1, runways, c.Runway, display.IconNone, now)
	}

	b.scrolls[1].Reset()
	fr := b.cfg.Readout.At(b.cfg.Theme.Font, readout, width, into)
	return Row{
		Index: 1,
		Text:  fr.Text,
		Color: c.Readout,
		Align: alignFor(fr.Text, readout),
	}
}

func (b *Board) noTrafficRows(now time.Time, w *weather.Record) [3]Row {
	c := b.cfg.Theme.Colors
	runway := Unavailable
	if w != nil && w.ArrivalsRunway != "" {
		runway = w.ArrivalsRunway
	}

	return [3]Row{
		b.row(0, "RWY "+runway+" ACTIVE", c.NoTraffic, display.IconNone, now),
		b.row(1, "No Approach", c.NoTraffic, display.IconNone, now),
		b.row(2, "Traffic", c.NoTraffic, display.IconNone, now),
	}
}

// row fits text next to icon, scrolling it when it is too wide.
func (b *Board) row(i int, text string, c color.RGBA, icon display.Icon, now time.Time) Row {
	fr := b.scrolls[i].Slice(text, b.cfg.Layout.TextWidth(icon), now)
	return Row{
		Index: i,
		Text:  fr.Text,
		Color: c,
		Icon:  icon,
		Align: alignFor(fr.Text, text),
	}
}

// alignFor centers text shown whole, a scrolling slice fills the row anyway.
func alignFor(shown, text string) Align {
	if shown == text {
		return AlignCenter
	}
	return AlignLeft
}

func conditionIcon(c weather.Condition) display.Icon {
	switch c {
	case weather.Sunny:
		return display.IconSun
	case weather.Rainy:
		return display.IconRain
	default:
		return display.IconCloud
	}
}

func orNA(s string) string {
	if s == "" {
		return Unavailable
	}
	return s
}
