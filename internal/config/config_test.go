package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string {
		return m[k]
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(env(map[string]string{"STATE_PATH": "/var/lib/fa"}))
	require.NoError(t, err)

	assert.Equal(t, "KLGA", cfg.Airport)
	assert.Equal(t, "04", cfg.WatchedRunway)
	assert.Equal(t, [4]float64{40.756132, 40.686813, -73.961956, -73.887739}, cfg.BoundsBox)
	assert.Equal(t, "40.756132,40.686813,-73.961956,-73.887739", cfg.BoundsParam())
	assert.Equal(t, 5000, cfg.MaxApproachAltitude)
	assert.Equal(t, 20*time.Second, cfg.FlightPollInterval)
	assert.Equal(t, 5*time.Minute, cfg.WeatherRefreshInterval)
	assert.Equal(t, 15*time.Minute, cfg.RunwayCheckInterval)
	assert.Equal(t, 128, cfg.Width())
	assert.Equal(t, 32, cfg.Height())
	assert.Equal(t, 10, cfg.FrameRate)
	assert.Equal(t, "ssd1306", cfg.Sink)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "mysql", cfg.DatabaseDriver)
	assert.False(t, cfg.StatsEnabled())
	assert.False(t, cfg.TelegramEnabled())
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		"STATE_PATH":            "/tmp/fa",
		"AIRPORT":               "kjfk",
		"FLIGHT_POLL_INTERVAL":  "5",
		"RUNWAY_CHECK_INTERVAL": "1m30s",
		"SINK":                  "Terminal",
		"BORDER":                "true",
		"DATABASE_DRIVER":       "postgres",
		"DATABASE_DSN":          "postgres://localhost/fa",
		"TELEGRAM_TOKEN":        "123:abc",
		"TELEGRAM_CHANNELID":    "-1001",
	}))
	require.NoError(t, err)

	assert.Equal(t, "KJFK", cfg.Airport)
	assert.Equal(t, 5*time.Second, cfg.FlightPollInterval)
	assert.Equal(t, 90*time.Second, cfg.RunwayCheckInterval)
	assert.Equal(t, "terminal", cfg.Sink)
	assert.True(t, cfg.Border)
	assert.True(t, cfg.StatsEnabled())
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, int64(-1001), cfg.TelegramChannelID)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"missing state path": {},
		"bad sink":           {"STATE_PATH": "/tmp", "SINK": "hub75"},
		"bad bounds":         {"STATE_PATH": "/tmp", "BOUNDS_BOX": "1,2,3"},
		"inverted bounds":    {"STATE_PATH": "/tmp", "BOUNDS_BOX": "40.6,40.7,-73.9,-73.8"},
		"bad channel":        {"STATE_PATH": "/tmp", "TELEGRAM_CHANNELID": "lobby"},
		"bad duration":       {"STATE_PATH": "/tmp", "FLIGHT_POLL_INTERVAL": "soon"},
		"zero chain":         {"STATE_PATH": "/tmp", "MATRIX_CHAIN": "0"},
		"bad bool":           {"STATE_PATH": "/tmp", "DEBUG": "maybe"},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(env(m))
			assert.Error(t, err)
		})
	}
}
