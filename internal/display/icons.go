package display

import (
	"image/color"
	"strconv"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/font"
)

type Icon int

const (
	IconNone Icon = iota
	IconCanadaFlag
	IconPlane
	IconHelicopter
	IconSun
	IconCloud
	IconRain
)

func (i Icon) String() string {
	switch i {
	case IconNone:
		return "none"
	case IconCanadaFlag:
		return "canada-flag"
	case IconPlane:
		return "plane"
	case IconHelicopter:
		return "helicopter"
	case IconSun:
		return "sun"
	case IconCloud:
		return "cloud"
	case IconRain:
		return "rain"
	default:
		panic("unknown icon " + strconv.Itoa(int(i)))
	}
}

// Sprite is pixel art, every byte of a row picks a color from the palette.
// Bytes missing from the palette are transparent.
type Sprite struct {
	Rows    []string
	Palette map[byte]color.RGBA
}

func (s *Sprite) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

func (s *Sprite) Height() int {
	return len(s.Rows)
}

// Draw draws the sprite with its top left corner at x,y.
func (s *Sprite) Draw(dst font.Canvas, x, y int) {
	for row, line := range s.Rows {
		for col := 0; col < len(line); col++ {
			if c, ok := s.Palette[line[col]]; ok {
				dst.Set(x+col, y+row, c)
			}
		}
	}
}

// Sprite returns the pixel art of i, nil for IconNone.
func (i Icon) Sprite() *Sprite {
	switch i {
	case IconNone:
		return nil
	case IconCanadaFlag:
		return canadaFlag
	case IconPlane:
		return Plane
	case IconHelicopter:
		return helicopter
	case IconSun:
		return sun
	case IconCloud:
		return cloud
	case IconRain:
		return rain
	default:
		panic("unknown icon " + strconv.Itoa(int(i)))
	}
}

// Width is the horizontal space the icon takes, zero for IconNone.
func (i Icon) Width() int {
	if sp := i.Sprite(); sp != nil {
		return sp.Width()
	}
	return 0
}

var (
	red    = RGB(255, 0, 0)
	purple = RGB(128, 0, 128)
	amber  = RGB(255, 200, 0)
	blue   = RGB(0, 100, 255)
	white  = RGB(255, 255, 255)
	grey   = RGB(160, 160, 160)
)

var canadaFlag = &Sprite{
	Rows: []string{
		"RRR.......RRR",
		"RRR...R...RRR",
		"RRR.R.R.R.RRR",
		"RRR.RRRRR.RRR",
		"RRR..RRR..RRR",
		"RRR.R.R.R.RRR",
		"RRR...R...RRR",
		"RRR.......RRR",
	},
	Palette: map[byte]color.RGBA{'R': red},
}

// Plane is the sprite crossing the panel when a flight is detected.
var Plane = &Sprite{
	Rows: []string{
		"          ",
		"      PP  ",
		"    PPP   ",
		"  PPP   PP",
		"PPPPPPPPPP",
		"PPPPPPPPPP",
		"  PPP   PP",
		"    PPP   ",
		"      PP  ",
		"          ",
	},
	Palette: map[byte]color.RGBA{'P': purple},
}

var helicopter = &Sprite{
	Rows: []string{
		"HHHHHHH ",
		"   H    ",
		" HHHH  H",
		"HH HHHHH",
		"HHHHH  H",
		" HHHH   ",
		"  H  H  ",
		" HHHHHH ",
	},
	Palette: map[byte]color.RGBA{'H': grey},
}

var sun = &Sprite{
	Rows: []string{
		"s  s  s ",
		" s s s  ",
		"  sss   ",
		"sssssss ",
		"  sss   ",
		" s s s  ",
		"s  s  s ",
		"        ",
	},
	Palette: map[byte]color.RGBA{'s': amber},
}

var cloud = &Sprite{
	Rows: []string{
		"        ",
		"  ~~~   ",
		" ~~~~~  ",
		"~~~~~~~ ",
		"~~~~~~~~",
		" ~~~~~~ ",
		"        ",
		"        ",
	},
	Palette: map[byte]color.RGBA{'~': white},
}

var rain = &Sprite{
	Rows: []string{
		"   o    ",
		"   o    ",
		"  ooo   ",
		" ooooo  ",
		" ooooo  ",
		"  ooo   ",
		"        ",
		"        ",
	},
	Palette: map[byte]color.RGBA{'o': blue},
}
