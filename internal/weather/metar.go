// Package weather extracts the display fields out of METAR and ATIS text.
// Nothing in here fails: a field that cannot be found is Unavailable.
package weather

import (
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Unavailable is returned for every field missing from the report.
const Unavailable = "N/A"

// Condition is the coarse sky category an icon is picked by.
type Condition int

const (
	Cloudy Condition = iota
	Sunny
	Rainy
)

func (c Condition) String() string {
	switch c {
	case Cloudy:
		return "cloudy"
	case Sunny:
		return "sunny"
	case Rainy:
		return "rainy"
	default:
		panic("unknown condition " + strconv.Itoa(int(c)))
	}
}

// Conditions are the fields derived from one METAR.
type Conditions struct {
	Temperature string
	Wind        string
	Visibility  string
	Cloud       string
	Condition   Condition
}

var (
	tempRe   = regexp.MustCompile(`^(M?\d{2})/(M?\d{2})?$`)
	windRe   = regexp.MustCompile(`^(\d{3}|VRB)(\d{2,3})(?:G(\d{2,3}))?(KT|MPS)$`)
	visRe    = regexp.MustCompile(`^[PM]?(\d+|\d/\d)SM$`)
	wholeRe  = regexp.MustCompile(`^\d$`)
	cloudRe  = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|VV)\d{3}(CB|TCU)?$`)
	precipRe = regexp.MustCompile(`^(\+|-|VC)?(MI|PR|BC|DR|BL|SH|TS|FZ)?(DZ|RA|SN|SG|IC|PL|GR|GS|UP)+$|^(VC)?TS$`)
)

// parsed memoises Parse, the same report is rendered at every frame
var parsed *lru.Cache[string, Conditions]

func init() {
	var err error
	parsed, err = lru.New[string, Conditions](32)
	if err != nil {
		panic("weather: lru setup failed: " + err.Error())
	}
}

// Clean drops the remarks section and collapses whitespace.
func Clean(metar string) string {
	return strings.Join(tokens(metar), " ")
}

// tokens returns the groups of the report before the remarks.
func tokens(metar string) []string {
	fields := strings.Fields(metar)
	for i, f := range fields {
		if f == "RMK" {
			return fields[:i]
		}
	}
	return fields
}

// Parse derives every display field of metar.
func Parse(metar string) Conditions {
	if c, ok := parsed.Get(metar); ok {
		return c
	}

	c := Conditions{
		Temperature: Temperature(metar),
		Wind:        Wind(metar),
		Visibility:  Visibility(metar),
		Cloud:       Cloud(metar),
		Condition:   ConditionOf(metar),
	}
	parsed.Add(metar, c)

	return c
}

// Temperature returns the air temperature like "31°C".
func Temperature(metar string) string {
	for _, t := range tokens(metar) {
		m := tempRe.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		return celsius(m[1]) + "°C"
	}
	return Unavailable
}

func celsius(s string) string {
	neg := strings.HasPrefix(s, "M")
	n, err := strconv.Atoi(strings.TrimPrefix(s, "M"))
	if err != nil {
		return Unavailable
	}
	if neg && n != 0 {
		n = -n
	}
	return strconv.Itoa(n)
}

// Wind returns direction and speed like "250@9G19KT", or CALM.
func Wind(metar string) string {
	for _, t := range tokens(metar) {
		m := windRe.FindStringSubmatch(t)
		if m == nil {
			continue
		}

		speed := trimZeros(m[2])
		if speed == "0" && m[3] == "" {
			return "CALM"
		}
		w := m[1] + "@" + speed
		if m[3] != "" {
			w += "G" + trimZeros(m[3])
		}
		return w + m[4]
	}
	return Unavailable
}

func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// Visibility returns the prevailing visibility like "10SM" or "1 1/2SM".
func Visibility(metar string) string {
	ts := tokens(metar)
	for i, t := range ts {
		if t == "CAVOK" {
			return t
		}
		if !visRe.MatchString(t) {
			continue
		}
		if i > 0 && strings.Contains(t, "/") && wholeRe.MatchString(ts[i-1]) {
			return ts[i-1] + " " + t
		}
		return t
	}
	return Unavailable
}

// Cloud returns the lowest reported layer like "SCT025", or the clear sky group.
func Cloud(metar string) string {
	for _, t := range tokens(metar) {
		switch t {
		case "CLR", "SKC", "NSC", "NCD":
			return t
		}
		if cloudRe.MatchString(t) {
			return t
		}
	}
	return Unavailable
}

// ConditionOf sorts the report into sunny, cloudy or rainy.
// Any precipitation or thunderstorm wins, then a clear sky, everything else is cloudy.
func ConditionOf(metar string) Condition {
	ts := tokens(metar)
	for _, t := range ts {
		if precipRe.MatchString(t) {
			return Rainy
		}
	}
	for _, t := range ts {
		if t == "CLR" || t == "SKC" {
			return Sunny
		}
	}
	return Cloudy
}
