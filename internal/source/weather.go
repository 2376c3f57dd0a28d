package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/weather"
	"golang.org/x/sync/errgroup"
)

type metarEntry struct {
	RawOb string `json:"rawOb"`
}

// FetchMETAR returns the latest raw METAR of the airport.
func (c *Client) FetchMETAR(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("ids", c.airport)
	q.Set("format", "json")

	var entries []metarEntry
	if err := c.getJSON(ctx, c.metarURL+"?"+q.Encode(), &entries); err != nil {
		return "", fmt.Errorf("metar: %w", err)
	}
	for _, e := range entries {
		if s := strings.TrimSpace(e.RawOb); s != "" {
			return s, nil
		}
	}

	return "", fmt.Errorf("metar %v: %w", c.airport, ErrNoData)
}

type atisEntry struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Datis string `json:"datis"`
}

// ATIS is the current broadcast of the airport.
type ATIS struct {
	Text       string
	Letter     string
	Arrivals   string
	Departures string
}

// FetchATIS returns the joined arrival and departure broadcasts.
func (c *Client) FetchATIS(ctx context.Context) (string, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, c.atisURL+"/"+url.PathEscape(c.airport), &raw); err != nil {
		return "", fmt.Errorf("atis: %w", err)
	}

	// unknown airports get an object with an error field
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &e)
		return "", fmt.Errorf("atis %v: %v: %w", c.airport, e.Error, ErrNoData)
	}

	var entries []atisEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return "", fmt.Errorf("atis: decoding response: %w", err)
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if s := strings.TrimSpace(e.Datis); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("atis %v: %w", c.airport, ErrNoData)
	}

	return strings.Join(parts, " "), nil
}

// FetchATISInfo fetches the broadcast and picks out what the panel shows.
func (c *Client) FetchATISInfo(ctx context.Context) (ATIS, error) {
	text, err := c.FetchATIS(ctx)
	if err != nil {
		return ATIS{}, err
	}

	a := ATIS{Text: text, Letter: weather.ATISLetter(text)}
	a.Arrivals, a.Departures = weather.ActiveRunways(text)
	if a.Letter == "" || a.Arrivals == "" {
		logger.Debugf("partial ATIS for %v: %q", c.airport, text)
	}
	return a, nil
}

// Weather is one combined fetch of the METAR and the ATIS, each feed with
// its own outcome.
type Weather struct {
	METAR     string
	METARErr  error
	ATIS      ATIS
	ATISErr   error
	FetchedAt time.Time
}

// FetchWeather gets the METAR and the ATIS together. A failing feed only
// sets its own error, the returned error is set when both fail.
func (c *Client) FetchWeather(ctx context.Context) (Weather, error) {
	var w Weather

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w.METAR, w.METARErr = c.FetchMETAR(gctx)
		return nil
	})
	g.Go(func() error {
		w.ATIS, w.ATISErr = c.FetchATISInfo(gctx)
		return nil
	})
	_ = g.Wait()
	w.FetchedAt = c.now()

	if w.METARErr != nil && w.ATISErr != nil {
		return w, fmt.Errorf("weather unavailable: %w", w.METARErr)
	}
	return w, nil
}
