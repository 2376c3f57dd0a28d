package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
)

// positions in a feed entry
const (
	fieldAltitude     = 4
	fieldTypeCode     = 8
	fieldRegistration = 9
	fieldOrigin       = 11
	fieldDestination  = 12
	fieldFlightNumber = 13
	fieldOnGround     = 14
	fieldCallsign     = 16
	minFields         = 13
)

// FetchApproachingFlight returns the lowest airborne aircraft in the corridor
// below the approach altitude, or nil when there is none.
func (c *Client) FetchApproachingFlight(ctx context.Context) (*flight.Record, error) {
	q := url.Values{}
	q.Set("bounds", c.bounds)
	for _, k := range []string{"faa", "satellite", "mlat", "flarm", "adsb", "air", "estimated"} {
		q.Set(k, "1")
	}
	for _, k := range []string{"gnd", "vehicles", "gliders", "stats"} {
		q.Set(k, "0")
	}
	q.Set("maxage", "14400")

	var feed map[string]json.RawMessage
	if err := c.getJSON(ctx, c.flightURL+"?"+q.Encode(), &feed); err != nil {
		return nil, fmt.Errorf("flight feed: %w", err)
	}

	obs := c.approaching(feed)
	if len(obs) == 0 {
		return nil, nil
	}
	r := flight.NewRecord(obs[0])
	return &r, nil
}

// approaching decodes the aircraft entries of feed, lowest first.
func (c *Client) approaching(feed map[string]json.RawMessage) []flight.Observation {
	type entry struct {
		id  string
		obs flight.Observation
	}

	var found []entry
	for id, raw := range feed {
		var fields []any
		if json.Unmarshal(raw, &fields) != nil || len(fields) < minFields {
			// version, full_count and friends
			continue
		}

		alt, ok := number(fields, fieldAltitude)
		if !ok || alt >= c.maxAltitude {
			continue
		}
		if ground, _ := number(fields, fieldOnGround); ground != 0 {
			continue
		}
		callsign := text(fields, fieldCallsign)
		if callsign == "" {
			callsign = text(fields, fieldFlightNumber)
		}
		if callsign == "" {
			continue
		}

		found = append(found, entry{id, flight.Observation{
			Callsign:     callsign,
			TypeCode:     text(fields, fieldTypeCode),
			Registration: text(fields, fieldRegistration),
			Origin:       text(fields, fieldOrigin),
			Destination:  text(fields, fieldDestination),
			AltitudeFeet: flight.Altitude(alt),
			SeenAt:       c.now(),
		}})
	}

	sort.Slice(found, func(i, j int) bool {
		ai, aj := *found[i].obs.AltitudeFeet, *found[j].obs.AltitudeFeet
		if ai != aj {
			return ai < aj
		}
		return found[i].id < found[j].id
	})

	obs := make([]flight.Observation, len(found))
	for i, e := range found {
		obs[i] = e.obs
	}
	logger.Debugf("%d aircraft on approach", len(obs))
	return obs
}

func text(fields []any, i int) string {
	if i >= len(fields) {
		return ""
	}
	s, _ := fields[i].(string)
	return s
}

func number(fields []any, i int) (int, bool) {
	if i >= len(fields) {
		return 0, false
	}
	switch v := fields[i].(type) {
	case float64:
		return int(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
