package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/stretchr/testify/assert"
)

var errUnsupported = errors.New("not implemented yet")

func newStatus(temps []host.TemperatureStat, avg *load.AvgStat) *Status {
	s := New("pi-lga")
	s.uptime = func(context.Context) (uint64, error) {
		return uint64((90 * time.Minute).Seconds()), nil
	}
	s.load = func(context.Context) (*load.AvgStat, error) {
		if avg == nil {
			return nil, errUnsupported
		}
		return avg, nil
	}
	s.temps = func(context.Context) ([]host.TemperatureStat, error) {
		if temps == nil {
			return nil, errUnsupported
		}
		return temps, nil
	}
	return s
}

func TestRead(t *testing.T) {
	s := newStatus(
		[]host.TemperatureStat{{SensorKey: "gpu_thermal", Temperature: 41.2}, {SensorKey: "cpu_thermal", Temperature: 43.802}},
		&load.AvgStat{Load1: 0.52, Load5: 0.58, Load15: 0.59},
	)
	i := s.Read()

	assert.True(t, i.HasTemp)
	assert.InDelta(t, 43.802, i.Celsius, 0.0001)
	assert.Equal(t, "0.52 0.58 0.59", i.Load)
	assert.Equal(t, 90*time.Minute, i.Uptime)
	assert.Equal(t, "pi-lga up 1h30m0s, temp 43.8C, load 0.52 0.58 0.59", i.String())
}

func TestReadMissing(t *testing.T) {
	s := newStatus(nil, nil)
	i := s.Read()
	assert.False(t, i.HasTemp)
	assert.Equal(t, "pi-lga up 1h30m0s, temp n/a, load n/a", i.String())
}

func TestReadPartialSensors(t *testing.T) {
	s := newStatus(nil, nil)
	s.temps = func(context.Context) ([]host.TemperatureStat, error) {
		return []host.TemperatureStat{{SensorKey: "cpu_thermal", Temperature: 52}}, errors.New("some sensors failed")
	}
	i := s.Read()
	assert.True(t, i.HasTemp)
	assert.Equal(t, 52.0, i.Celsius)
}

func TestHottest(t *testing.T) {
	cases := []struct {
		name  string
		temps []host.TemperatureStat
		want  float64
		ok    bool
	}{
		{"none", nil, 0, false},
		{"one", []host.TemperatureStat{{Temperature: 48.5}}, 48.5, true},
		{"highest wins", []host.TemperatureStat{{Temperature: 40}, {Temperature: 61}, {Temperature: 55}}, 61, true},
		{"bogus readings skipped", []host.TemperatureStat{{Temperature: 0}, {Temperature: 255}, {Temperature: 47}}, 47, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := hottest(c.temps)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCheckAndReport(t *testing.T) {
	s := newStatus([]host.TemperatureStat{{SensorKey: "cpu_thermal", Temperature: 81}}, nil)
	assert.True(t, s.Check().Celsius >= HotCelsius)

	r := s.Report("mode: weather", "pending sightings: 0")
	assert.Equal(t, "pi-lga up 1h30m0s, temp 81.0C, load n/a\nmode: weather\npending sightings: 0", r)
}
