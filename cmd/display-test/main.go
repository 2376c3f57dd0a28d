package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/board"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/display"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/file"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/weather"
	"github.com/juju/loggo"
	"golang.org/x/image/draw"
)

var logger = loggo.GetLogger("display-test")

// stepClock only moves when the board sleeps.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) Sleep(ctx context.Context, d time.Duration) {
	if ctx.Err() == nil {
		c.now = c.now.Add(d)
	}
}

type state struct {
	name string
	at   time.Duration
	snap board.Snapshot
}

func states() []state {
	wx := &weather.Record{
		METAR:            "KLGA 171651Z 25009G19KT 10SM SCT025 BKN120 BKN250 31/21 A2984 RMK AO2",
		ArrivalsRunway:   "22",
		DeparturesRunway: "13",
		ATISLetter:       "K",
	}
	rain := *wx
	rain.METAR = "KLGA 171651Z 04012KT 3SM -RA BR OVC008 18/17 A2990"
	windy := *wx
	windy.METAR = "KLGA 171651Z VRB22G35KT 10SM FEW040 26/12 A2971"
	active := *wx
	active.ArrivalsRunway = "04"

	rec := func(obs flight.Observation) *flight.Record {
		r := flight.NewRecord(obs)
		return &r
	}
	ual := rec(flight.Observation{Callsign: "UAL123", TypeCode: "B737", Origin: "ORD", Destination: "LGA", AltitudeFeet: flight.Altitude(3500)})
	aca := rec(flight.Observation{Callsign: "ACA714", TypeCode: "CRJ9", Origin: "YYZ", Destination: "LGA", AltitudeFeet: flight.Altitude(2800)})
	jet := rec(flight.Observation{Callsign: "N650GA", TypeCode: "GLF6", Origin: "TEB", Destination: "LGA"})
	heli := rec(flight.Observation{Callsign: "N60NY", TypeCode: "H60"})

	return []state{
		{"weather", 0, board.Snapshot{Mode: board.Weather, Data: board.Data{Weather: wx}}},
		{"weather-banner", 5 * time.Second, board.Snapshot{Mode: board.Weather, Data: board.Data{Weather: wx}}},
		{"weather-readout", 4 * time.Second, board.Snapshot{Mode: board.Weather, Data: board.Data{Weather: wx}}},
		{"weather-rain", 0, board.Snapshot{Mode: board.Weather, Data: board.Data{Weather: &rain}}},
		{"weather-windy", 0, board.Snapshot{Mode: board.Weather, Data: board.Data{Weather: &windy}}},
		{"weather-unavailable", 0, board.Snapshot{Mode: board.Weather}},
		{"no-traffic", 0, board.Snapshot{Mode: board.NoTraffic, Data: board.Data{Weather: &active}}},
		{"flight", 0, board.Snapshot{Mode: board.Flight, Data: board.Data{Flight: ual}}},
		{"flight-canada", 0, board.Snapshot{Mode: board.Flight, Data: board.Data{Flight: aca}}},
		{"flight-private", 0, board.Snapshot{Mode: board.Flight, Data: board.Data{Flight: jet}}},
		{"flight-private-banner", 3 * time.Second, board.Snapshot{Mode: board.Flight, Data: board.Data{Flight: jet}}},
		{"flight-helicopter", 0, board.Snapshot{Mode: board.Flight, Data: board.Data{Flight: heli}}},
	}
}

func main() {
	out := flag.String("out", "", "directory to write PNGs to, the terminal is used when empty")
	scale := flag.Int("scale", 4, "PNG scale factor")
	width := flag.Int("width", 128, "panel width")
	height := flag.Int("height", 32, "panel height")
	themeName := flag.String("theme", "classic", "classic or compact")
	border := flag.Bool("border", false, "frame the panel")
	hold := flag.Duration("hold", 3*time.Second, "how long each state stays on the terminal")
	celebrate := flag.Bool("celebrate", false, "play the celebration on the terminal first")
	flag.Parse()

	theme, ok := board.ThemeByName(*themeName, *border)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", *themeName)
		os.Exit(2)
	}
	cfg := board.DefaultConfig(*width, *height, theme)

	var err error
	if *out != "" {
		err = writePNGs(cfg, *out, *scale)
	} else {
		err = showTerminal(cfg, *hold, *celebrate)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func writePNGs(cfg board.Config, dir string, scale int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, st := range states() {
		clock := &stepClock{now: time.Date(2024, 7, 17, 16, 51, 0, 0, time.UTC)}
		screen := display.NewScreen(display.NewMemorySink(cfg.Layout.Width, cfg.Layout.Height))
		b := board.New(cfg, screen, clock)
		if err := b.Render(b.Reference().Add(st.at), st.snap); err != nil {
			return err
		}

		frame := screen.Snapshot()
		img := image.NewRGBA(image.Rect(0, 0, frame.Bounds().Dx()*scale, frame.Bounds().Dy()*scale))
		draw.NearestNeighbor.Scale(img, img.Bounds(), frame, frame.Bounds(), draw.Src, nil)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return err
		}
		p := filepath.Join(dir, st.name+".png")
		if err := file.WriteAtomically(p, &buf); err != nil {
			return err
		}
		logger.Infof("wrote %v", p)
	}
	return nil
}

func showTerminal(cfg board.Config, hold time.Duration, celebrate bool) error {
	sink, err := display.NewTerminalSink(cfg.Layout.Width, cfg.Layout.Height)
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sink.Quit()
		cancel()
	}()

	b := board.New(cfg, display.NewScreen(sink), board.SystemClock{})
	all := states()
	if celebrate {
		for _, st := range all {
			if st.name == "flight" {
				if err := b.RunCelebration(ctx, *st.snap.Data.Flight); err != nil {
					return err
				}
			}
		}
	}

	t := time.NewTicker(100 * time.Millisecond)
	defer t.Stop()
	for _, st := range all {
		end := b.Now().Add(hold)
		for b.Now().Before(end) {
			if err := b.Render(b.Now(), st.snap); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
			}
		}
	}
	return b.ClearDisplay()
}
