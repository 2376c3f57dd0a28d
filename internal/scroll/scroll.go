// Package scroll animates text that does not fit its row.
//
// A cycle pauses on the start of the text, moves it left by one glyph per tick until
// the end of the text is visible, then pauses on the end. Everything is computed from
// elapsed time, so skipped or repeated frames always agree with the clock.
package scroll

import (
	"strconv"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/font"
)

type Phase int

const (
	PauseStart Phase = iota
	Scrolling
	PauseEnd
)

func (p Phase) String() string {
	switch p {
	case PauseStart:
		return "PauseStart"
	case Scrolling:
		return "Scrolling"
	case PauseEnd:
		return "PauseEnd"
	default:
		panic("unknown phase " + strconv.Itoa(int(p)))
	}
}

// Config describes one scroll cycle. With Loop set the cycle repeats forever,
// otherwise the animation stops on the end of the text and reports Done.
type Config struct {
	PauseStart time.Duration
	Tick       time.Duration
	PauseEnd   time.Duration
	Loop       bool
}

// Ticker is the continuous configuration used for the METAR row.
var Ticker = Config{
	PauseStart: 2 * time.Second,
	Tick:       200 * time.Millisecond,
	PauseEnd:   2 * time.Second,
	Loop:       true,
}

// Once plays a single cycle.
var Once = Config{
	PauseStart: 2 * time.Second,
	Tick:       200 * time.Millisecond,
	PauseEnd:   2 * time.Second,
}

// Frame is the visible part of a text at some instant, Elapsed is the time spent in Phase so far.
type Frame struct {
	Text    string
	Phase   Phase
	Offset  int
	Elapsed time.Duration
	Done    bool
}

func (c Config) steps(f *font.Font, text string, maxWidth int) ([]rune, int, int) {
	runes := []rune(text)
	n := f.Fits(maxWidth)
	if len(runes) <= n {
		return runes, n, 0
	}
	return runes, n, len(runes) - n
}

// CycleLength is the duration of one full cycle, zero for text that fits.
func (c Config) CycleLength(f *font.Font, text string, maxWidth int) time.Duration {
	_, _, steps := c.steps(f, text, maxWidth)
	if steps == 0 {
		return 0
	}
	return c.PauseStart + time.Duration(steps)*c.Tick + c.PauseEnd
}

// At returns the frame shown elapsed after the cycle started.
func (c Config) At(f *font.Font, text string, maxWidth int, elapsed time.Duration) Frame {
	runes, n, steps := c.steps(f, text, maxWidth)
	if steps == 0 {
		return Frame{Text: text, Phase: PauseStart, Elapsed: elapsed}
	}

	scroll := time.Duration(steps) * c.Tick
	cycle := c.PauseStart + scroll + c.PauseEnd
	if cycle <= 0 {
		panic("scroll: cycle length must be positive")
	}

	if elapsed < 0 {
		elapsed = 0
	}
	done := false
	if c.Loop {
		elapsed %= cycle
	} else if elapsed >= cycle {
		elapsed = cycle
		done = true
	}

	fr := Frame{Done: done}
	switch {
	case elapsed < c.PauseStart:
		fr.Phase = PauseStart
		fr.Elapsed = elapsed
	case elapsed < c.PauseStart+scroll:
		fr.Phase = Scrolling
		fr.Elapsed = elapsed - c.PauseStart
		fr.Offset = int(fr.Elapsed / c.Tick)
	default:
		fr.Phase = PauseEnd
		fr.Elapsed = elapsed - c.PauseStart - scroll
		fr.Offset = steps
	}
	fr.Text = string(runes[fr.Offset : fr.Offset+n])

	return fr
}
