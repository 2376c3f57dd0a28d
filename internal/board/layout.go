package board

import (
	"image/color"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/display"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/font"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/scroll"
)

// Layout is the fixed geometry of the panel.
type Layout struct {
	Width       int
	Height      int
	Baselines   [3]int
	Margin      int
	MaxRowWidth int
	IconGap     int
}

// NewLayout splits the panel into three bands, text sits at the bottom of its band.
// A 128x32 panel with the 5x8 font has its rows at 2, 12 and 22.
func NewLayout(width, height int, f *font.Font, border bool) Layout {
	pitch := height / 3
	l := Layout{
		Width:   width,
		Height:  height,
		Margin:  1,
		IconGap: 2,
	}
	if border {
		l.Margin = 2
	}
	for i := range l.Baselines {
		l.Baselines[i] = i*pitch + pitch - f.Height
	}
	l.MaxRowWidth = width - 2*l.Margin
	if l.MaxRowWidth < 0 {
		panic("board: panel narrower than its margins")
	}

	return l
}

// TextWidth is the room left for text on a row carrying icon.
func (l Layout) TextWidth(icon display.Icon) int {
	w := l.MaxRowWidth
	if icon != display.IconNone {
		w -= icon.Width() + l.IconGap
	}
	if w < 0 {
		return 0
	}
	return w
}

type Colors struct {
	Type        color.RGBA
	Callsign    color.RGBA
	Route       color.RGBA
	Banner      color.RGBA
	Runway      color.RGBA
	Readout     color.RGBA
	METAR       color.RGBA
	NoTraffic   color.RGBA
	Celebration color.RGBA
	Border      color.RGBA
}

var defaultColors = Colors{
	Type:        display.RGB(128, 0, 128),
	Callsign:    display.RGB(255, 165, 0),
	Route:       display.RGB(173, 216, 230),
	Banner:      display.RGB(255, 255, 255),
	Runway:      display.RGB(100, 150, 255),
	Readout:     display.RGB(255, 191, 0),
	METAR:       display.RGB(100, 150, 255),
	NoTraffic:   display.RGB(100, 150, 255),
	Celebration: display.RGB(255, 191, 0),
	Border:      display.RGB(40, 40, 90),
}

// Theme is the look of the panel.
type Theme struct {
	Name   string
	Font   *font.Font
	Border bool
	Colors Colors
}

var (
	Classic = Theme{Name: "classic", Font: font.Classic, Colors: defaultColors}
	Compact = Theme{Name: "compact", Font: font.Compact, Colors: defaultColors}
)

// ThemeByName returns the named theme, optionally framed by a border.
func ThemeByName(name string, border bool) (Theme, bool) {
	var t Theme
	switch name {
	case Classic.Name:
		t = Classic
	case Compact.Name:
		t = Compact
	default:
		return Theme{}, false
	}
	t.Border = border
	return t, true
}

// Config holds everything the board needs to know besides the data.
type Config struct {
	Airport       string
	WatchedRunway string

	Theme  Theme
	Layout Layout

	BannerDwell     time.Duration
	RunwayDwell     time.Duration
	PrivateJetDwell time.Duration
	Ticker          scroll.Config
	Readout         scroll.Config

	Flashes    int
	FlashOn    time.Duration
	FlashOff   time.Duration
	SpriteTick time.Duration
}

func DefaultConfig(width, height int, theme Theme) Config {
	return Config{
		Airport:         "KLGA",
		WatchedRunway:   "04",
		Theme:           theme,
		Layout:          NewLayout(width, height, theme.Font, theme.Border),
		BannerDwell:     5 * time.Second,
		RunwayDwell:     3 * time.Second,
		PrivateJetDwell: 3 * time.Second,
		Ticker:          scroll.Ticker,
		Readout:         scroll.Once,
		Flashes:         2,
		FlashOn:         time.Second,
		FlashOff:        time.Second,
		SpriteTick:      100 * time.Microsecond,
	}
}
