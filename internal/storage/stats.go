package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
)

const topN = 3

// Count is how often Name came up.
type Count struct {
	Name string
	N    int
}

// Stats summarizes the sightings of one day.
type Stats struct {
	Day             time.Time
	Total           int
	Helicopters     int
	PrivateJets     int
	CanadianOrigins int
	TopAirlines     []Count
	TopOrigins      []Count
	TopTypes        []Count
}

const selectDay = `
	SELECT callsign, origin, type_code, is_private_jet, is_helicopter, is_canadian_origin, seen_at
	FROM sightings
	WHERE seen_at >= ? AND seen_at < ?
	ORDER BY seen_at
`

// DailyStats summarizes the sightings of the day day falls on, in its location.
func (s *Storage) DailyStats(ctx context.Context, day time.Time) (Stats, error) {
	start := startOfDay(day)
	end := start.AddDate(0, 0, 1)

	rows, err := s.db.QueryContext(ctx, rebind(s.driver, selectDay), start.UnixNano(), end.UnixNano())
	if err != nil {
		return Stats{}, fmt.Errorf("querying sightings: %w", err)
	}
	defer rows.Close()

	var list []Sighting
	for rows.Next() {
		var (
			r    Sighting
			nano int64
		)
		err := rows.Scan(&r.Callsign, &r.Origin, &r.TypeCode, &r.IsPrivateJet, &r.IsHelicopter, &r.IsCanadianOrigin, &nano)
		if err != nil {
			return Stats{}, fmt.Errorf("scanning sighting: %w", err)
		}
		r.SeenAt = time.Unix(0, nano).In(day.Location())
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("reading sightings: %w", err)
	}

	return Summarize(start, list), nil
}

// Summarize counts the sightings of day in list, others are ignored.
func Summarize(day time.Time, list []Sighting) Stats {
	start := startOfDay(day)
	end := start.AddDate(0, 0, 1)
	st := Stats{Day: start}

	airlines := map[string]int{}
	origins := map[string]int{}
	types := map[string]int{}
	for _, s := range list {
		if s.SeenAt.Before(start) || !s.SeenAt.Before(end) {
			continue
		}

		st.Total++
		if s.IsHelicopter {
			st.Helicopters++
		}
		if s.IsPrivateJet {
			st.PrivateJets++
		}
		if s.IsCanadianOrigin {
			st.CanadianOrigins++
		}
		if a := flight.Airline(s.Callsign); a != "" {
			airlines[a]++
		}
		if s.Origin != "" {
			origins[flight.AirportName(s.Origin)]++
		}
		if s.TypeCode != "" {
			types[flight.AircraftName(s.TypeCode)]++
		}
	}
	st.TopAirlines = top(airlines, topN)
	st.TopOrigins = top(origins, topN)
	st.TopTypes = top(types, topN)

	return st
}

func top(m map[string]int, n int) []Count {
	c := make([]Count, 0, len(m))
	for k, v := range m {
		c = append(c, Count{k, v})
	}
	sort.Slice(c, func(i, j int) bool {
		if c[i].N != c[j].N {
			return c[i].N > c[j].N
		}
		return c[i].Name < c[j].Name
	})
	if len(c) > n {
		c = c[:n]
	}
	return c
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
