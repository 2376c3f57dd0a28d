package board

import (
	"sync/atomic"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/weather"
)

// Data is the latest input of the board, nil means not available.
type Data struct {
	Flight  *flight.Record
	Weather *weather.Record
}

func (d Data) clone() Data {
	var c Data
	if d.Flight != nil {
		f := *d.Flight
		if f.AltitudeFeet != nil {
			f.AltitudeFeet = flight.Altitude(*f.AltitudeFeet)
		}
		c.Flight = &f
	}
	if d.Weather != nil {
		w := *d.Weather
		c.Weather = &w
	}
	return c
}

// Snapshot is one consistent view of the data. Detection increases
// every time a new flight shows up.
type Snapshot struct {
	Mode      Mode
	Data      Data
	Detection uint64
	UpdatedAt time.Time
}

// Feed hands snapshots from the poller to the render loop.
// Published snapshots are copied, readers never see a partial update.
type Feed struct {
	p atomic.Pointer[Snapshot]
}

func (f *Feed) Publish(s Snapshot) {
	s.Data = s.Data.clone()
	f.p.Store(&s)
}

// Load returns the latest snapshot, the weather screen without data before the first Publish.
func (f *Feed) Load() Snapshot {
	if p := f.p.Load(); p != nil {
		s := *p
		s.Data = s.Data.clone()
		return s
	}
	return Snapshot{Mode: Weather}
}
