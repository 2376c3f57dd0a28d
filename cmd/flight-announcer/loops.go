package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/board"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/config"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/source"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/storage"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/weather"
)

type fetcher interface {
	FetchApproachingFlight(ctx context.Context) (*flight.Record, error)
	FetchMETAR(ctx context.Context) (string, error)
	FetchATISInfo(ctx context.Context) (source.ATIS, error)
	FetchWeather(ctx context.Context) (source.Weather, error)
}

// poller fetches every feed on its own interval and publishes the merged
// result. A failing feed keeps its last good value, the flight only while
// it is younger than two poll intervals.
type poller struct {
	src  fetcher
	feed *board.Feed
	cfg  *config.Config
	now  func() time.Time

	onDetect func(flight.Record)

	tracker   tracker
	flight    *flight.Record
	flightAt  time.Time
	weather   weather.Record
	nextMETAR time.Time
	nextATIS  time.Time
}

func newPoller(src fetcher, feed *board.Feed, cfg *config.Config) *poller {
	return &poller{
		src:  src,
		feed: feed,
		cfg:  cfg,
		now:  time.Now,
	}
}

func (p *poller) loop(ctx context.Context) error {
	t := time.NewTicker(p.cfg.FlightPollInterval)
	defer t.Stop()

	for {
		p.poll(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (p *poller) poll(ctx context.Context) {
	now := p.now()

	metarDue, atisDue := !now.Before(p.nextMETAR), !now.Before(p.nextATIS)
	switch {
	case metarDue && atisDue:
		// each feed carries its own error
		w, _ := p.src.FetchWeather(ctx)
		p.setMETAR(now, w.METAR, w.METARErr)
		p.setATIS(now, w.ATIS, w.ATISErr)
	case metarDue:
		m, err := p.src.FetchMETAR(ctx)
		p.setMETAR(now, m, err)
	case atisDue:
		a, err := p.src.FetchATISInfo(ctx)
		p.setATIS(now, a, err)
	}

	f, err := p.src.FetchApproachingFlight(ctx)
	switch {
	case err == nil:
		p.flightAt = now
	case now.Sub(p.flightAt) < 2*p.cfg.FlightPollInterval:
		logger.Warningf("%v", err)
		f = p.flight
	default:
		logger.Warningf("%v", err)
		if p.flight != nil {
			logger.Infof("dropping %v, last seen %v ago", p.flight.Callsign, now.Sub(p.flightAt))
		}
		f = nil
	}
	p.flight = f

	switch ev := p.tracker.observe(f); ev {
	case detected:
		logger.Infof("%v: %v %v at %v", ev, f.Callsign, f.Route, f.AltitudeText())
		if p.onDetect != nil {
			p.onDetect(*f)
		}
	case stillDetected:
		logger.Debugf("%v: %v", ev, f.Callsign)
	case noLongerDetected:
		logger.Infof("%v", ev)
	}

	var w *weather.Record
	if p.weather != (weather.Record{}) {
		wc := p.weather
		w = &wc
	}
	p.feed.Publish(board.Snapshot{
		Mode:      board.ModeFor(f, w, p.cfg.WatchedRunway),
		Data:      board.Data{Flight: f, Weather: w},
		Detection: p.tracker.detection,
		UpdatedAt: now,
	})
}

func (p *poller) setMETAR(now time.Time, m string, err error) {
	if err != nil {
		logger.Warningf("%v", err)
		return
	}
	p.weather.METAR = m
	p.weather.UpdatedAt = now
	p.nextMETAR = now.Add(p.cfg.WeatherRefreshInterval)
}

func (p *poller) setATIS(now time.Time, a source.ATIS, err error) {
	if err != nil {
		logger.Warningf("%v", err)
		return
	}
	p.weather.ATISLetter = a.Letter
	p.weather.ArrivalsRunway = a.Arrivals
	p.weather.DeparturesRunway = a.Departures
	p.weather.UpdatedAt = now
	p.nextATIS = now.Add(p.cfg.RunwayCheckInterval)
}

// renderLoop owns the screen, a new detection plays the celebration
// before the regular frames go on.
func (a *app) renderLoop(ctx context.Context) error {
	t := time.NewTicker(time.Second / time.Duration(a.cfg.FrameRate))
	defer t.Stop()

	var shown uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		shown = a.drawFrame(ctx, shown)
	}
}

// drawFrame draws one frame of the latest snapshot and returns the
// detection that was celebrated last.
func (a *app) drawFrame(ctx context.Context, shown uint64) uint64 {
	snap := a.feed.Load()
	if snap.Detection != shown && snap.Mode == board.Flight {
		if err := a.board.RunCelebration(ctx, *snap.Data.Flight); err != nil {
			logger.Warningf("celebration: %v", err)
		}
		return snap.Detection
	}
	if err := a.board.Render(a.board.Now(), snap); err != nil {
		logger.Warningf("render: %v", err)
	}
	return shown
}

func (a *app) statusLoop(ctx context.Context) error {
	t := time.NewTicker(statusDurr)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			a.status.Check()
		}
	}
}

// announce records and posts a new detection, off the poll loop.
func (a *app) announce(rec flight.Record) {
	if a.storage != nil {
		a.storage.Insert(storage.SightingOf(rec))
	}
	if a.bot != nil {
		go func() {
			if err := a.bot.Announce(rec); err != nil {
				logger.Debugf("announce %v: %v", rec.Callsign, err)
			}
		}()
	}
}

func (a *app) statusReport() string {
	snap := a.feed.Load()
	lines := []string{
		"mode: " + snap.Mode.String(),
		"detections: " + strconv.FormatUint(snap.Detection, 10),
	}
	if f := snap.Data.Flight; f != nil {
		lines = append(lines, "flight: "+f.Callsign+" "+f.Route+" "+f.AltitudeText())
	}
	lines = append(lines, weatherLines(snap.Data.Weather, a.board.Now())...)
	if a.storage != nil {
		lines = append(lines, "pending sightings: "+strconv.Itoa(a.storage.Pending()))
	}
	return a.status.Report(strings.Join(lines, "\n"))
}

// weatherLines describe the weather part of the status reply.
func weatherLines(w *weather.Record, now time.Time) []string {
	if w == nil {
		return []string{"weather: n/a"}
	}

	c := w.Conditions()
	return []string{
		"metar: " + weather.Clean(w.METAR),
		fmt.Sprintf("weather: %v, temp %v, wind %v, vis %v, cloud %v", c.Condition, c.Temperature, c.Wind, c.Visibility, c.Cloud),
		"runways: ARR " + w.ArrivalsRunway + " DEP " + w.DeparturesRunway,
		"updated: " + now.Sub(w.UpdatedAt).Truncate(time.Second).String() + " ago",
	}
}
