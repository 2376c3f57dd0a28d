// Package source fetches flights, METARs and ATIS broadcasts from public feeds.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/config"
	"github.com/juju/loggo"
	"golang.org/x/time/rate"
)

var logger = loggo.GetLogger("main.source")

const (
	FlightFeedURL = "https://data-cloud.flightradar24.com/zones/fcgi/feed.js"
	METARURL      = "https://aviationweather.gov/api/data/metar"
	ATISURL       = "https://datis.clowd.io/api"

	requestTimeout = 10 * time.Second
	maxBody        = 4 << 20
	userAgent      = "flight-announcer/1.0"
)

// ErrNoData is returned when a feed answered but had nothing for the airport.
var ErrNoData = errors.New("no data")

// Client talks to every feed, sharing one request limiter.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	now     func() time.Time

	flightURL string
	metarURL  string
	atisURL   string

	airport     string
	bounds      string
	maxAltitude int
}

func New(cfg *config.Config) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Every(cfg.MinRequestInterval), 1),
		now:     time.Now,

		flightURL: FlightFeedURL,
		metarURL:  METARURL,
		atisURL:   ATISURL,

		airport:     cfg.Airport,
		bounds:      cfg.BoundsParam(),
		maxAltitude: cfg.MaxApproachAltitude,
	}
}

// WithBaseURLs points the client elsewhere, empty strings keep the current URL.
func (c *Client) WithBaseURLs(flight, metar, atis string) *Client {
	if flight != "" {
		c.flightURL = flight
	}
	if metar != "" {
		c.metarURL = metar
	}
	if atis != "" {
		c.atisURL = atis
	}
	return c
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	logger.Tracef("GET %v took %v", req.URL.Host, c.now().Sub(start))

	return nil
}
