package display

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

func TestClearMarksEverything(t *testing.T) {
	sink := NewMemorySink(128, 32)
	s := NewScreen(sink)

	s.Clear()
	assert.Equal(t, 128*32, s.DirtyCount())
	require.NoError(t, s.Swap())
	assert.Len(t, sink.LastFlush(), 128*32)
	assert.Zero(t, s.DirtyCount())
	assert.Empty(t, s.Dirty())
}

func TestMemorySinkStartsBlack(t *testing.T) {
	sink := NewMemorySink(16, 8)
	s := NewScreen(sink)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, Black, sink.Pixel(x, y), "pixel %d,%d", x, y)
			require.Equal(t, Black, s.Presented(x, y))
		}
	}

	sink.SetPixel(3, 3, RGB(255, 0, 0))
	sink.Clear()
	assert.Equal(t, Black, sink.Pixel(3, 3))
	assert.Zero(t, sink.Lit())
}

func TestSinglePixelAfterClear(t *testing.T) {
	sink := NewMemorySink(128, 32)
	s := NewScreen(sink)
	require.NoError(t, s.Swap())

	s.Clear()
	s.Set(10, 5, RGB(255, 165, 0))
	assert.Contains(t, s.Dirty(), image.Pt(10, 5))
	require.NoError(t, s.Swap())
	assert.Contains(t, sink.LastFlush(), image.Pt(10, 5))
	assert.Equal(t, RGB(255, 165, 0), sink.Pixel(10, 5))
	assert.Zero(t, s.DirtyCount())

	// the presented frame carries over into the next one
	assert.Equal(t, RGB(255, 165, 0), s.At(10, 5))
	assert.Equal(t, RGB(255, 165, 0), s.Presented(10, 5))
}

func TestOnlyChangesAreWritten(t *testing.T) {
	sink := NewMemorySink(16, 8)
	s := NewScreen(sink)

	s.Set(1, 1, white)
	s.Set(2, 1, white)
	require.NoError(t, s.Swap())
	assert.Len(t, sink.LastFlush(), 2)

	// same frame again, only the wiped pixels are rewritten
	s.Wipe()
	s.Set(1, 1, white)
	s.Set(2, 1, white)
	s.Set(3, 1, Black)
	require.NoError(t, s.Swap())
	assert.Len(t, sink.LastFlush(), 2)

	// one pixel moved: the old one is blanked, the new one lit
	s.Wipe()
	s.Set(2, 1, white)
	s.Set(3, 1, white)
	assert.ElementsMatch(t, []image.Point{{1, 1}, {2, 1}, {3, 1}}, s.Dirty())
	require.NoError(t, s.Swap())
	assert.Equal(t, Black, sink.Pixel(1, 1))
	assert.Equal(t, white, sink.Pixel(3, 1))
	assert.Equal(t, 2, sink.Lit())
}

func TestOutOfBoundsIsDropped(t *testing.T) {
	sink := NewMemorySink(16, 8)
	s := NewScreen(sink)
	s.Set(-1, 0, white)
	s.Set(16, 0, white)
	s.Set(0, 8, white)
	assert.Zero(t, s.DirtyCount())
	assert.Equal(t, color.Color(Black), s.At(-1, 0))
}

func TestScreenIsDrawImage(t *testing.T) {
	var _ draw.Image = (*Screen)(nil)

	sink := NewMemorySink(8, 8)
	s := NewScreen(sink)
	draw.Draw(s, image.Rect(0, 0, 2, 2), image.NewUniform(red), image.Point{}, draw.Src)
	require.NoError(t, s.Swap())
	assert.Equal(t, 4, sink.Lit())

	snap := s.Snapshot()
	assert.Equal(t, red, snap.RGBAAt(1, 1))
	assert.Equal(t, Black, snap.RGBAAt(2, 2))
}

func TestIcons(t *testing.T) {
	for i := IconCanadaFlag; i <= IconRain; i++ {
		sp := i.Sprite()
		require.NotNil(t, sp, i.String())
		for _, row := range sp.Rows {
			assert.Len(t, row, sp.Width(), i.String())
		}
		assert.LessOrEqual(t, sp.Height(), 10, i.String())
	}
	assert.Nil(t, IconNone.Sprite())
	assert.Zero(t, IconNone.Width())
	assert.Equal(t, 13, IconCanadaFlag.Width())
	assert.Equal(t, 10, Plane.Width())
	assert.Panics(t, func() { _ = Icon(42).String() })
}

func TestSpriteDraw(t *testing.T) {
	sink := NewMemorySink(20, 10)
	s := NewScreen(sink)
	Plane.Draw(s, 0, 0)
	require.NoError(t, s.Swap())
	assert.Equal(t, purple, sink.Pixel(0, 4))
	assert.Equal(t, Black, sink.Pixel(0, 0))

	// clipped at the edge
	s.Wipe()
	Plane.Draw(s, 15, 0)
	require.NoError(t, s.Swap())
	assert.Equal(t, purple, sink.Pixel(19, 4))
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, uint8(255), luminance(white))
	assert.Equal(t, uint8(0), luminance(Black))
	assert.Greater(t, luminance(RGB(255, 165, 0)), Threshold)
}
