package font

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pixels map[[2]int]color.Color

func (p pixels) Set(x, y int, c color.Color) {
	p[[2]int{x, y}] = c
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 0, Classic.MeasureWidth(""))
	assert.Equal(t, 36, Classic.MeasureWidth("UAL123"))
	assert.Equal(t, 30, Classic.MeasureWidth("ORD→L"))
	assert.Equal(t, 24, Compact.MeasureWidth("KLGA:2"))
}

func TestTruncateToWidth(t *testing.T) {
	cases := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"fits", "UAL123", 36, "UAL123"},
		{"cut", "WEATHER AT KLGA", 36, "WEATH…"},
		{"one glyph", "WEATHER", 6, "…"},
		{"nothing fits", "WEATHER", 5, ""},
		{"empty", "", 0, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classic.TruncateToWidth(c.text, c.max)
			assert.Equal(t, c.want, got)
			assert.LessOrEqual(t, Classic.MeasureWidth(got), c.max)
		})
	}
}

func TestTruncateIdempotent(t *testing.T) {
	texts := []string{"", "A", "NO RWY 04 ARRIVALS", "YOU HAVE INFORMATION ALPHA ", "ORD → LGA"}
	for _, f := range []*Font{Classic, Compact} {
		for _, s := range texts {
			for w := 0; w <= 130; w++ {
				once := f.TruncateToWidth(s, w)
				require.Equal(t, once, f.TruncateToWidth(once, w), "font %s text %q width %d", f.Name, s, w)
				require.LessOrEqual(t, f.MeasureWidth(once), w)
			}
		}
	}
}

func TestTruncateNegativeWidthPanics(t *testing.T) {
	assert.Panics(t, func() { Classic.TruncateToWidth("A", -1) })
}

func TestDrawSkipsUnknownGlyphs(t *testing.T) {
	p := pixels{}
	end := Classic.Draw(p, "a~1", 0, 0, color.White)
	assert.Equal(t, 18, end)

	// nothing is drawn in the cell of the unknown rune
	for k := range p {
		assert.False(t, k[0] >= 6 && k[0] < 12, "pixel drawn at %v", k)
	}
	// lowercase a uses the A glyph, whose top row is full
	for x := 0; x < 5; x++ {
		assert.Contains(t, p, [2]int{x, 0})
	}
	// 1 is drawn in the third cell
	assert.Contains(t, p, [2]int{14, 0})
}

func TestFontsCoverTheSameRunes(t *testing.T) {
	for r := range Classic.glyphs {
		_, ok := Compact.Glyph(r)
		assert.True(t, ok, "compact is missing %q", r)
		assert.Len(t, Classic.glyphs[r], Classic.Height)
	}
	for r, g := range Compact.glyphs {
		assert.Len(t, g, Compact.Height, "%q", r)
	}
	assert.Equal(t, Classic, ByName("classic"))
	assert.Nil(t, ByName("gothic"))
}
