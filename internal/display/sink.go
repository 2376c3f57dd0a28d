package display

import (
	"image"
	"image/color"
	"sync"
)

// Sink is the panel hardware, or anything standing in for it.
type Sink interface {
	SetPixel(x, y int, c color.RGBA)
	Clear()
	Width() int
	Height() int
	// Flush makes the pixels set so far visible.
	Flush() error
}

// MemorySink keeps the panel in memory, it is used headless and in tests.
type MemorySink struct {
	w, h int

	mu        sync.Mutex
	pixels    []color.RGBA
	pending   []image.Point
	lastFlush []image.Point
	flushes   int
}

func NewMemorySink(w, h int) *MemorySink {
	m := &MemorySink{
		w:      w,
		h:      h,
		pixels: make([]color.RGBA, w*h),
	}
	m.Clear()
	return m
}

func (m *MemorySink) Width() int {
	return m.w
}

func (m *MemorySink) Height() int {
	return m.h
}

func (m *MemorySink) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pixels[y*m.w+x] = c
	m.pending = append(m.pending, image.Pt(x, y))
}

func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pixels {
		m.pixels[i] = Black
	}
}

func (m *MemorySink) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFlush = m.pending
	m.pending = nil
	m.flushes++
	return nil
}

// Pixel returns the color shown at x,y.
func (m *MemorySink) Pixel(x, y int) color.RGBA {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pixels[y*m.w+x]
}

// LastFlush returns the pixels written before the last Flush.
func (m *MemorySink) LastFlush() []image.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]image.Point(nil), m.lastFlush...)
}

func (m *MemorySink) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// Lit counts the pixels that are not black.
func (m *MemorySink) Lit() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.pixels {
		if p.R != 0 || p.G != 0 || p.B != 0 {
			n++
		}
	}
	return n
}
