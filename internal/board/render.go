package board

import (
	"context"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/display"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
)

// Render draws the rows for snapshot at now.
func (b *Board) Render(now time.Time, s Snapshot) error {
	return b.Draw(b.ComputeDisplayState(now, s.Mode, s.Data))
}

// Draw composes rows into a frame and presents it.
func (b *Board) Draw(rows [3]Row) error {
	b.screen.Wipe()
	b.drawBorder()
	for _, r := range rows {
		b.drawRow(r)
	}
	return b.screen.Swap()
}

// ClearDisplay blanks the whole panel.
func (b *Board) ClearDisplay() error {
	b.screen.Clear()
	return b.screen.Swap()
}

func (b *Board) drawRow(r Row) {
	l := b.cfg.Layout
	f := b.cfg.Theme.Font
	if r.Index < 0 || r.Index >= len(l.Baselines) {
		panic("board: row index out of range")
	}

	y := l.Baselines[r.Index]
	width := f.MeasureWidth(r.Text)
	sp := r.Icon.Sprite()
	if sp != nil {
		width += sp.Width() + l.IconGap
	}

	x := l.Margin
	if r.Align == AlignCenter && width < l.MaxRowWidth {
		x += (l.MaxRowWidth - width) / 2
	}
	if sp != nil {
		sp.Draw(b.screen, x, y+(f.Height-sp.Height())/2)
		x += sp.Width() + l.IconGap
	}
	f.Draw(b.screen, r.Text, x, y, r.Color)
}

func (b *Board) drawBorder() {
	if !b.cfg.Theme.Border {
		return
	}

	c := b.cfg.Theme.Colors.Border
	w, h := b.cfg.Layout.Width, b.cfg.Layout.Height
	for x := 0; x < w; x++ {
		b.screen.Set(x, 0, c)
		b.screen.Set(x, h-1, c)
	}
	for y := 0; y < h; y++ {
		b.screen.Set(0, y, c)
		b.screen.Set(w-1, y, c)
	}
}

// present swaps the frame, a failing panel must not stop the animation.
func (b *Board) present() {
	if err := b.screen.Swap(); err != nil {
		logger.Warningf("present frame: %v", err)
	}
}

// RunCelebration announces a new flight: the banner flashes, a plane crosses
// the panel, then the flight is shown. It blocks until done. A cancelled ctx
// skips what is left of the animation, the flight is rendered either way.
// Only one celebration may run at a time.
func (b *Board) RunCelebration(ctx context.Context, rec flight.Record) error {
	logger.Debugf("celebrating %v", rec.Callsign)
	b.flashBanner(ctx)
	b.sweepPlane(ctx)

	return b.Render(b.clock.Now(), Snapshot{
		Mode: Flight,
		Data: Data{Flight: &rec},
	})
}

func (b *Board) flashBanner(ctx context.Context) {
	l := b.cfg.Layout
	f := b.cfg.Theme.Font
	text := f.TruncateToWidth(IncomingBanner, l.MaxRowWidth)
	x := (l.Width - f.MeasureWidth(text)) / 2
	y := (l.Height - f.Height) / 2

	for i := 0; i < b.cfg.Flashes; i++ {
		if ctx.Err() != nil {
			return
		}
		b.screen.Wipe()
		f.Draw(b.screen, text, x, y, b.cfg.Theme.Colors.Celebration)
		b.present()
		b.clock.Sleep(ctx, b.cfg.FlashOn)

		b.screen.Wipe()
		b.present()
		b.clock.Sleep(ctx, b.cfg.FlashOff)
	}
}

// sweepPlane moves the plane one column per frame, from just off the
// right edge until it has left on the left.
func (b *Board) sweepPlane(ctx context.Context) {
	l := b.cfg.Layout
	sp := display.Plane
	y := l.Height/2 - sp.Height()/2

	for x := l.Width; x >= -sp.Width(); x-- {
		if ctx.Err() != nil {
			return
		}
		b.screen.Wipe()
		sp.Draw(b.screen, x, y)
		b.present()
		b.clock.Sleep(ctx, b.cfg.SpriteTick)
	}
}
