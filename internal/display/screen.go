// Package display composes frames for the LED panel and pushes them to a Sink.
package display

import (
	"image"
	"image/color"
)

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Black is the background of the panel.
var Black = RGB(0, 0, 0)

// Screen is a double buffered frame. Drawing goes to the back buffer, Swap
// writes only the pixels that differ from the presented frame to the sink.
// Screen implements draw.Image on the back buffer.
type Screen struct {
	sink Sink
	w, h int
	bg   color.RGBA

	front  []color.RGBA
	back   []color.RGBA
	dirty  []bool
	ndirty int
}

func NewScreen(sink Sink) *Screen {
	w, h := sink.Width(), sink.Height()
	if w <= 0 || h <= 0 {
		panic("display: sink has no area")
	}

	s := &Screen{
		sink:  sink,
		w:     w,
		h:     h,
		bg:    Black,
		front: make([]color.RGBA, w*h),
		back:  make([]color.RGBA, w*h),
		dirty: make([]bool, w*h),
	}
	for i := range s.front {
		s.front[i] = s.bg
		s.back[i] = s.bg
	}
	sink.Clear()

	return s
}

func (s *Screen) Width() int {
	return s.w
}

func (s *Screen) Height() int {
	return s.h
}

func (s *Screen) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *Screen) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.w, s.h)
}

// At returns the color of the frame being composed.
func (s *Screen) At(x, y int) color.Color {
	if !s.inside(x, y) {
		return s.bg
	}
	return s.back[y*s.w+x]
}

// Presented returns the color last written to the sink.
func (s *Screen) Presented(x, y int) color.RGBA {
	if !s.inside(x, y) {
		return s.bg
	}
	return s.front[y*s.w+x]
}

// Set draws a pixel into the back buffer, pixels outside of the panel are dropped.
func (s *Screen) Set(x, y int, c color.Color) {
	if !s.inside(x, y) {
		return
	}

	i := y*s.w + x
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	s.back[i] = rgba
	if rgba != s.front[i] {
		s.mark(i)
	}
}

// Clear fills the back buffer with the background and marks the whole panel dirty,
// so the next Swap rewrites every pixel.
func (s *Screen) Clear() {
	for i := range s.back {
		s.back[i] = s.bg
		s.mark(i)
	}
}

// Wipe fills the back buffer with the background, only pixels that were lit become dirty.
func (s *Screen) Wipe() {
	for i := range s.back {
		s.back[i] = s.bg
		if s.front[i] != s.bg {
			s.mark(i)
		}
	}
}

func (s *Screen) mark(i int) {
	if !s.dirty[i] {
		s.dirty[i] = true
		s.ndirty++
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.w && y < s.h
}

// DirtyCount returns how many pixels the next Swap writes.
func (s *Screen) DirtyCount() int {
	return s.ndirty
}

// Dirty returns the pixels the next Swap writes, in row order.
func (s *Screen) Dirty() []image.Point {
	pts := make([]image.Point, 0, s.ndirty)
	for i, d := range s.dirty {
		if d {
			pts = append(pts, image.Pt(i%s.w, i/s.w))
		}
	}
	return pts
}

// Swap presents the back buffer. The presented frame is copied into the new back
// buffer, so drawing continues from what is on the panel.
func (s *Screen) Swap() error {
	if s.ndirty > 0 {
		for i, d := range s.dirty {
			if !d {
				continue
			}
			s.sink.SetPixel(i%s.w, i/s.w, s.back[i])
			s.dirty[i] = false
		}
		s.ndirty = 0
	}

	s.front, s.back = s.back, s.front
	copy(s.back, s.front)

	return s.sink.Flush()
}

// Snapshot copies the presented frame.
func (s *Screen) Snapshot() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			img.SetRGBA(x, y, s.front[y*s.w+x])
		}
	}
	return img
}
