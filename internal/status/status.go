// status reports the health of the device: uptime, temperature and load.
// Check logs a warning when the board runs hot, which the log writer
// forwards to telegram.
package status

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/juju/loggo"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
)

var logger = loggo.GetLogger("main.status")

// HotCelsius is the temperature Check warns at.
var HotCelsius = 75.0

const readTimeout = 2 * time.Second

type Status struct {
	device string

	uptime func(ctx context.Context) (uint64, error)
	load   func(ctx context.Context) (*load.AvgStat, error)
	temps  func(ctx context.Context) ([]host.TemperatureStat, error)
}

func New(device string) *Status {
	return &Status{
		device: device,
		uptime: host.UptimeWithContext,
		load:   load.AvgWithContext,
		temps:  host.SensorsTemperaturesWithContext,
	}
}

// Info is one reading of the device.
type Info struct {
	Device  string
	Uptime  time.Duration
	Celsius float64
	HasTemp bool
	Load    string
}

func (s *Status) Read() Info {
	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	i := Info{
		Device: s.device,
		Load:   "n/a",
	}

	if up, err := s.uptime(ctx); err == nil {
		i.Uptime = time.Duration(up) * time.Second
	} else {
		logger.Debugf("uptime: %v", err)
	}

	if avg, err := s.load(ctx); err == nil {
		i.Load = fmt.Sprintf("%.2f %.2f %.2f", avg.Load1, avg.Load5, avg.Load15)
	} else {
		logger.Debugf("load: %v", err)
	}

	// some sensors failing still gives the rest
	temps, err := s.temps(ctx)
	if err != nil {
		logger.Debugf("temperature: %v", err)
	}
	i.Celsius, i.HasTemp = hottest(temps)

	return i
}

// hottest returns the highest plausible reading, the SoC is the hottest part of the board.
func hottest(temps []host.TemperatureStat) (float64, bool) {
	var (
		hi float64
		ok bool
	)
	for _, t := range temps {
		if t.Temperature <= 0 || t.Temperature > 150 {
			continue
		}
		if !ok || t.Temperature > hi {
			hi, ok = t.Temperature, true
		}
	}
	return hi, ok
}

func (i Info) String() string {
	temp := "n/a"
	if i.HasTemp {
		temp = strconv.FormatFloat(i.Celsius, 'f', 1, 64) + "C"
	}
	return fmt.Sprintf("%v up %v, temp %v, load %v", i.Device, i.Uptime, temp, i.Load)
}

// Check logs the current reading, as a warning when the device is hot.
func (s *Status) Check() Info {
	i := s.Read()
	if i.HasTemp && i.Celsius >= HotCelsius {
		logger.Warningf("running hot: %v", i)
		return i
	}
	logger.Debugf("status: %v", i)
	return i
}

// Report is the reply to a status request, the device reading followed by lines.
func (s *Status) Report(lines ...string) string {
	return strings.Join(append([]string{s.Read().String()}, lines...), "\n")
}
