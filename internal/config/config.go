package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("main.config")

type Config struct {
	StatePath     string
	DeviceName    string
	Airport       string
	WatchedRunway string

	// BoundsBox is north, south, west, east of the approach corridor.
	BoundsBox           [4]float64
	MaxApproachAltitude int

	FlightPollInterval     time.Duration
	WeatherRefreshInterval time.Duration
	RunwayCheckInterval    time.Duration
	MinRequestInterval     time.Duration

	MatrixRows     int
	MatrixCols     int
	MatrixChain    int
	MatrixParallel int
	FrameRate      int

	Sink   string
	Theme  string
	Border bool

	DatabaseDriver string
	DatabaseDSN    string

	TelegramToken     string
	TelegramChannelID int64

	LogSpec string
	Debug   bool
}

// Width of the panel in pixels.
func (c *Config) Width() int {
	return c.MatrixCols * c.MatrixChain
}

// Height of the panel in pixels.
func (c *Config) Height() int {
	return c.MatrixRows * c.MatrixParallel
}

// BoundsParam formats the corridor the way the flight feed takes it.
func (c *Config) BoundsParam() string {
	s := make([]string, len(c.BoundsBox))
	for i, v := range c.BoundsBox {
		s[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(s, ",")
}

// StatsEnabled reports whether sightings are recorded.
func (c *Config) StatsEnabled() bool {
	return c.DatabaseDSN != ""
}

func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChannelID != 0
}

// Get reads the config from the environment, exiting on bad input.
func Get() *Config {
	cfg, err := Load(os.Getenv)
	if err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}

	return cfg
}

// Load reads the config through getenv.
func Load(getenv func(string) string) (*Config, error) {
	r := reader{getenv: getenv}

	cfg := &Config{
		StatePath:     r.str("STATE_PATH", ""),
		DeviceName:    r.str("DEVICE_NAME", hostname()),
		Airport:       strings.ToUpper(r.str("AIRPORT", "KLGA")),
		WatchedRunway: strings.ToUpper(r.str("WATCHED_RUNWAY", "04")),

		BoundsBox:           r.bounds("BOUNDS_BOX", "40.756132,40.686813,-73.961956,-73.887739"),
		MaxApproachAltitude: r.int("MAX_APPROACH_ALTITUDE", 5000),

		FlightPollInterval:     r.duration("FLIGHT_POLL_INTERVAL", 20*time.Second),
		WeatherRefreshInterval: r.duration("WEATHER_REFRESH_INTERVAL", 5*time.Minute),
		RunwayCheckInterval:    r.duration("RUNWAY_CHECK_INTERVAL", 15*time.Minute),
		MinRequestInterval:     r.duration("MIN_REQUEST_INTERVAL", time.Second),

		MatrixRows:     r.int("MATRIX_ROWS", 32),
		MatrixCols:     r.int("MATRIX_COLS", 64),
		MatrixChain:    r.int("MATRIX_CHAIN", 2),
		MatrixParallel: r.int("MATRIX_PARALLEL", 1),
		FrameRate:      r.int("FRAME_RATE", 10),

		Sink:   r.oneOf("SINK", "ssd1306", "terminal", "memory"),
		Theme:  r.oneOf("THEME", "classic", "compact"),
		Border: r.bool("BORDER"),

		DatabaseDriver: r.oneOf("DATABASE_DRIVER", "mysql", "postgres"),
		DatabaseDSN:    r.str("DATABASE_DSN", ""),

		TelegramToken: r.str("TELEGRAM_TOKEN", ""),
		LogSpec:       r.str("LOG_SPEC", "<root>=INFO"),
		Debug:         r.bool("DEBUG"),
	}
	if cid := r.str("TELEGRAM_CHANNELID", ""); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			r.fail("TELEGRAM_CHANNELID", cid)
		}
		cfg.TelegramChannelID = id
	}

	if r.err != nil {
		return nil, r.err
	}
	if cfg.StatePath == "" {
		return nil, fmt.Errorf("empty STATE_PATH env var")
	}
	for k, v := range map[string]int{
		"MATRIX_ROWS":     cfg.MatrixRows,
		"MATRIX_COLS":     cfg.MatrixCols,
		"MATRIX_CHAIN":    cfg.MatrixChain,
		"MATRIX_PARALLEL": cfg.MatrixParallel,
		"FRAME_RATE":      cfg.FrameRate,
	} {
		if v <= 0 {
			return nil, fmt.Errorf("%s env var must be positive, got %d", k, v)
		}
	}

	return cfg, nil
}

// reader keeps the first failure so Load reports one error per bad var.
type reader struct {
	getenv func(string) string
	err    error
}

func (r *reader) fail(key, val string) {
	if r.err == nil {
		r.err = fmt.Errorf("failed parsing %s env var: %q", key, val)
	}
}

func (r *reader) str(key, def string) string {
	if v := strings.TrimSpace(r.getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) int(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v)
	}
	return i
}

func (r *reader) bool(key string) bool {
	v := r.str(key, "")
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v)
	}
	return b
}

// duration takes Go durations, or plain seconds.
func (r *reader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		r.fail(key, v)
	}
	return d
}

// oneOf defaults to the first choice.
func (r *reader) oneOf(key string, choices ...string) string {
	v := strings.ToLower(r.str(key, choices[0]))
	for _, c := range choices {
		if v == c {
			return v
		}
	}
	r.fail(key, v)
	return choices[0]
}

func (r *reader) bounds(key, def string) [4]float64 {
	var b [4]float64
	v := r.str(key, def)
	parts := strings.Split(v, ",")
	if len(parts) != len(b) {
		r.fail(key, v)
		return b
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			r.fail(key, v)
			return b
		}
		b[i] = f
	}
	if b[0] <= b[1] || b[2] >= b[3] {
		r.fail(key, v)
	}
	return b
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "flight-announcer"
	}
	return h
}
