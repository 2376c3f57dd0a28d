package display

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TerminalSink previews the panel in a terminal. Every cell shows two pixels
// stacked on top of each other using the upper half block.
type TerminalSink struct {
	screen tcell.Screen
	w, h   int

	mu      sync.Mutex
	pixels  []color.RGBA
	touched map[[2]int]struct{}

	quit chan struct{}
	once sync.Once
}

func NewTerminalSink(width, height int) (*TerminalSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()

	t := &TerminalSink{
		screen:  screen,
		w:       width,
		h:       height,
		pixels:  make([]color.RGBA, width*height),
		touched: map[[2]int]struct{}{},
		quit:    make(chan struct{}),
	}
	go t.pollEvents()

	return t, nil
}

func (t *TerminalSink) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// screen finalized
			t.once.Do(func() { close(t.quit) })
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				logger.Infof("terminal preview closed from the keyboard")
				t.once.Do(func() { close(t.quit) })
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Quit is closed when the preview is dismissed.
func (t *TerminalSink) Quit() <-chan struct{} {
	return t.quit
}

func (t *TerminalSink) Width() int {
	return t.w
}

func (t *TerminalSink) Height() int {
	return t.h
}

func (t *TerminalSink) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pixels[y*t.w+x] = c
	t.touched[[2]int{x, y / 2}] = struct{}{}
}

func (t *TerminalSink) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.pixels {
		t.pixels[i] = Black
	}
	t.screen.Clear()
}

func (t *TerminalSink) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for cell := range t.touched {
		x, row := cell[0], cell[1]
		top := t.pixels[2*row*t.w+x]
		bottom := Black
		if 2*row+1 < t.h {
			bottom = t.pixels[(2*row+1)*t.w+x]
		}
		style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
		t.screen.SetContent(x, row, '▀', nil, style)
		delete(t.touched, cell)
	}
	t.screen.Show()

	return nil
}

func (t *TerminalSink) Close() error {
	t.screen.Fini()
	return nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
