// Package font holds the fixed-width bitmap fonts used on the LED panel.
package font

import (
	"image/color"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended by TruncateToWidth, every font carries a glyph for it.
const Ellipsis = '…'

// Canvas is anything that pixels can be set on, draw.Image satisfies it.
type Canvas interface {
	Set(x, y int, c color.Color)
}

// Font is a fixed-width bitmap font. Every glyph row is a bitmask of Width bits,
// the most significant bit being the leftmost column.
type Font struct {
	Name    string
	Width   int
	Height  int
	Advance int

	glyphs map[rune][]uint8
}

// Glyph returns the rows of r, lowercase runes resolve to their uppercase glyph.
func (f *Font) Glyph(r rune) ([]uint8, bool) {
	g, ok := f.glyphs[unicode.ToUpper(r)]
	return g, ok
}

// MeasureWidth returns the width of text in pixels, including the gap after the last glyph.
func (f *Font) MeasureWidth(text string) int {
	return utf8.RuneCountInString(text) * f.Advance
}

// Fits returns how many glyphs fit into maxPixels.
func (f *Font) Fits(maxPixels int) int {
	if maxPixels < 0 {
		panic("font: negative width")
	}
	return maxPixels / f.Advance
}

// TruncateToWidth cuts text so it fits into maxPixels, marking the cut with an ellipsis.
// Text that already fits is returned unchanged.
func (f *Font) TruncateToWidth(text string, maxPixels int) string {
	n := f.Fits(maxPixels)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	if n == 0 {
		return ""
	}

	return string(runes[:n-1]) + string(Ellipsis)
}

// Draw draws text with its top left corner at x,y and returns the x after the last glyph.
// Runes without a glyph are skipped but still take up their advance.
func (f *Font) Draw(dst Canvas, text string, x, y int, c color.Color) int {
	for _, r := range text {
		if g, ok := f.Glyph(r); ok {
			for row, bits := range g {
				for col := 0; col < f.Width; col++ {
					if bits&(1<<uint(f.Width-1-col)) != 0 {
						dst.Set(x+col, y+row, c)
					}
				}
			}
		}
		x += f.Advance
	}

	return x
}

// ByName returns the font called name, or nil.
func ByName(name string) *Font {
	switch name {
	case Classic.Name:
		return Classic
	case Compact.Name:
		return Compact
	}
	return nil
}
