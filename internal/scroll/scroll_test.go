package scroll

import (
	"strings"
	"testing"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atis = "YOU HAVE INFORMATION ALPHA "

func TestFitsIsStatic(t *testing.T) {
	fr := Ticker.At(font.Classic, "KLGA", 60, 7*time.Second)
	assert.Equal(t, "KLGA", fr.Text)
	assert.False(t, fr.Done)
	assert.Zero(t, Ticker.CycleLength(font.Classic, "KLGA", 60))
}

func TestRoundTrip(t *testing.T) {
	const width = 60 // 10 glyphs
	require.Greater(t, font.Classic.MeasureWidth(atis), width)

	cycle := Once.CycleLength(font.Classic, atis, width)
	// 27 runes, 10 visible, 17 steps
	require.Equal(t, 4*time.Second+17*200*time.Millisecond, cycle)

	var frames []Frame
	for e := time.Duration(0); e <= cycle; e += 50 * time.Millisecond {
		frames = append(frames, Once.At(font.Classic, atis, width, e))
	}

	first, last := frames[0], frames[len(frames)-1]
	assert.Equal(t, "YOU HAVE I", first.Text)
	assert.Equal(t, PauseStart, first.Phase)
	assert.Equal(t, "ION ALPHA ", last.Text)
	assert.Equal(t, PauseEnd, last.Phase)
	assert.True(t, last.Done)

	prevPhase, prevOffset := PauseStart, 0
	for _, fr := range frames {
		assert.True(t, strings.Contains(atis, fr.Text), "%q is not contiguous in the source", fr.Text)
		assert.Len(t, []rune(fr.Text), 10)
		assert.GreaterOrEqual(t, int(fr.Phase), int(prevPhase))
		assert.GreaterOrEqual(t, fr.Offset, prevOffset)
		assert.LessOrEqual(t, fr.Offset-prevOffset, 1, "offset skipped a glyph")
		prevPhase, prevOffset = fr.Phase, fr.Offset
	}
}

func TestPhaseBoundaries(t *testing.T) {
	const width = 60
	cases := []struct {
		elapsed time.Duration
		phase   Phase
		offset  int
	}{
		{0, PauseStart, 0},
		{1999 * time.Millisecond, PauseStart, 0},
		{2 * time.Second, Scrolling, 0},
		{2199 * time.Millisecond, Scrolling, 0},
		{2200 * time.Millisecond, Scrolling, 1},
		{5399 * time.Millisecond, Scrolling, 16},
		{5400 * time.Millisecond, PauseEnd, 17},
		{7399 * time.Millisecond, PauseEnd, 17},
	}
	for _, c := range cases {
		fr := Once.At(font.Classic, atis, width, c.elapsed)
		assert.Equal(t, c.phase, fr.Phase, "at %v", c.elapsed)
		assert.Equal(t, c.offset, fr.Offset, "at %v", c.elapsed)
		assert.False(t, fr.Done, "at %v", c.elapsed)
	}
}

func TestLoopWraps(t *testing.T) {
	const width = 60
	cycle := Ticker.CycleLength(font.Classic, atis, width)
	for _, e := range []time.Duration{0, 300 * time.Millisecond, 3 * time.Second, 6 * time.Second} {
		assert.Equal(t, Ticker.At(font.Classic, atis, width, e), Ticker.At(font.Classic, atis, width, e+3*cycle))
	}
	assert.False(t, Ticker.At(font.Classic, atis, width, cycle).Done)
}

func TestStateKeepsStartForSameText(t *testing.T) {
	t0 := time.Date(2024, 7, 17, 16, 51, 0, 0, time.UTC)
	s := NewState(Ticker, font.Classic)

	s.Slice(atis, 60, t0)
	require.True(t, s.Active())
	s.Slice(atis, 60, t0.Add(time.Second))
	s.Slice(atis, 60, t0.Add(3*time.Second))
	assert.Equal(t, t0, s.Start())
	assert.Equal(t, Scrolling, s.Phase())
	assert.Equal(t, t0.Add(2*time.Second), s.PhaseStart())

	// skipping frames lands on the same slice as the pure form
	fr := s.Slice(atis, 60, t0.Add(4500*time.Millisecond))
	assert.Equal(t, Ticker.At(font.Classic, atis, 60, 4500*time.Millisecond), fr)

	// same instant, same answer
	assert.Equal(t, fr, s.Slice(atis, 60, t0.Add(4500*time.Millisecond)))
}

func TestStateResetsOnNewText(t *testing.T) {
	t0 := time.Date(2024, 7, 17, 16, 51, 0, 0, time.UTC)
	s := NewState(Ticker, font.Classic)

	s.Slice(atis, 60, t0)
	fr := s.Slice(atis, 60, t0.Add(3*time.Second))
	require.Equal(t, Scrolling, fr.Phase)

	other := "METAR KLGA 171651Z 25009G19KT 10SM SCT025"
	t1 := t0.Add(3100 * time.Millisecond)
	fr = s.Slice(other, 60, t1)
	assert.Equal(t, PauseStart, fr.Phase)
	assert.Equal(t, "METAR KLGA", fr.Text)
	assert.Equal(t, t1, s.Start())

	// text that fits clears the state
	fr = s.Slice("KLGA", 60, t1.Add(time.Second))
	assert.Equal(t, "KLGA", fr.Text)
	assert.False(t, s.Active())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "PauseEnd", PauseEnd.String())
	assert.Panics(t, func() { _ = Phase(7).String() })
}
