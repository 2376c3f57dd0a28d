package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/juju/loggo"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/devices/ssd1306"
	"periph.io/x/periph/devices/ssd1306/image1bit"
	"periph.io/x/periph/host"
)

var logger = loggo.GetLogger("main.display")

// Threshold is the luminance from which a pixel is lit on monochrome panels.
var Threshold uint8 = 48

// SSD1306Sink drives a monochrome ssd1306 OLED over I2C, colors are thresholded by luminance.
type SSD1306Sink struct {
	bus i2c.BusCloser
	dev *ssd1306.Dev
	img *image1bit.VerticalLSB
}

func NewSSD1306Sink(width, height int) (*SSD1306Sink, error) {
	if _, err := host.Init(); err != nil {
		logger.Errorf("no display detected, skipping: %v", err)
		return nil, err
	}

	b, err := i2creg.Open("")
	if err != nil {
		logger.Errorf("could not open i2c bus, display disabled: %v", err)
		return nil, err
	}

	opts := ssd1306.DefaultOpts
	opts.W = width
	opts.H = height
	opts.Rotated = false
	dev, err := ssd1306.NewI2C(b, &opts)
	if err != nil {
		_ = b.Close()
		logger.Errorf("could not find ssd1306 screen, display disabled: %v", err)
		return nil, err
	}

	return &SSD1306Sink{
		bus: b,
		dev: dev,
		img: image1bit.NewVerticalLSB(dev.Bounds()),
	}, nil
}

func (s *SSD1306Sink) Width() int {
	return s.img.Bounds().Dx()
}

func (s *SSD1306Sink) Height() int {
	return s.img.Bounds().Dy()
}

func (s *SSD1306Sink) SetPixel(x, y int, c color.RGBA) {
	s.img.SetBit(x, y, image1bit.Bit(luminance(c) >= Threshold))
}

func (s *SSD1306Sink) Clear() {
	s.img = image1bit.NewVerticalLSB(s.dev.Bounds())
}

func (s *SSD1306Sink) Flush() error {
	if err := s.dev.Draw(s.dev.Bounds(), s.img, image.Point{}); err != nil {
		return fmt.Errorf("ssd1306 draw: %w", err)
	}
	return nil
}

// Close blanks the panel and releases the bus.
func (s *SSD1306Sink) Close() error {
	if err := s.dev.Halt(); err != nil {
		logger.Warningf("ssd1306 halt: %v", err)
	}
	return s.bus.Close()
}

func luminance(c color.RGBA) uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}
