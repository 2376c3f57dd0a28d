package scroll

import (
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/font"
)

// State tracks the scroll cycle of one row across frames.
// A new text or width restarts the cycle, the same text keeps it running.
type State struct {
	cfg  Config
	font *font.Font

	active     bool
	text       string
	width      int
	start      time.Time
	phase      Phase
	phaseStart time.Time
}

func NewState(cfg Config, f *font.Font) *State {
	return &State{cfg: cfg, font: f}
}

// Slice returns the frame of text visible at now inside maxWidth pixels.
func (s *State) Slice(text string, maxWidth int, now time.Time) Frame {
	if s.font.MeasureWidth(text) <= maxWidth {
		s.Reset()
		return Frame{Text: text}
	}

	if !s.active || text != s.text || maxWidth != s.width {
		s.active = true
		s.text = text
		s.width = maxWidth
		s.start = now
		s.phase = PauseStart
		s.phaseStart = now
	}

	fr := s.cfg.At(s.font, text, maxWidth, now.Sub(s.start))
	if fr.Phase != s.phase {
		s.phase = fr.Phase
		s.phaseStart = now.Add(-fr.Elapsed)
	}

	return fr
}

// Reset forgets the running cycle.
func (s *State) Reset() {
	*s = State{cfg: s.cfg, font: s.font}
}

func (s *State) Active() bool {
	return s.active
}

func (s *State) Phase() Phase {
	return s.phase
}

func (s *State) PhaseStart() time.Time {
	return s.phaseStart
}

func (s *State) Start() time.Time {
	return s.start
}
