package weather

import (
	"regexp"
	"strings"
)

var phonetic = [26]string{
	"ALPHA", "BRAVO", "CHARLIE", "DELTA", "ECHO", "FOXTROT", "GOLF", "HOTEL",
	"INDIA", "JULIET", "KILO", "LIMA", "MIKE", "NOVEMBER", "OSCAR", "PAPA",
	"QUEBEC", "ROMEO", "SIERRA", "TANGO", "UNIFORM", "VICTOR", "WHISKEY",
	"XRAY", "YANKEE", "ZULU",
}

var (
	letterRes = []*regexp.Regexp{
		regexp.MustCompile(`\bINFO(?:RMATION)?\s+([A-Z])\b`),
		regexp.MustCompile(`\bATIS\s+([A-Z])\b`),
	}

	letterWordRe = regexp.MustCompile(`\bINFO(?:RMATION)?\s+(` + strings.Join(phonetic[:], "|") + `)\b`)

	arrivalRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:LNDG|LDG|LANDING|ARRIVING|ARRIVALS?)(?:\s+AND\s+(?:DEPG|DEPARTING))?\s+(?:RWYS?|RUNWAYS?)\s*(\d{1,2}[LCR]?)\b`),
		regexp.MustCompile(`\b(?:ILS|RNAV|VISUAL|VIS|RNP|VOR|LOC|GPS)(?:\s+[XYZ])?\s+(?:APCH\s+|APPROACH\s+)?(?:RWY|RUNWAY)\s*(\d{1,2}[LCR]?)\b`),
	}

	departureRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:DEPG|DEPTG|DEPARTING|DEPARTURES?|DEP)\s+(?:RWYS?|RUNWAYS?)\s*(\d{1,2}[LCR]?)\b`),
	}
)

// Phonetic returns the NATO word of letter, or "" for anything that is not a single letter.
func Phonetic(letter string) string {
	if len(letter) != 1 {
		return ""
	}
	c := strings.ToUpper(letter)[0]
	if c < 'A' || c > 'Z' {
		return ""
	}
	return phonetic[c-'A']
}

// Readout is the phrase controllers expect pilots to report, "" for an unknown letter.
func Readout(letter string) string {
	w := Phonetic(letter)
	if w == "" {
		return ""
	}
	return "YOU HAVE INFORMATION " + w
}

// ATISLetter finds the current information letter in an ATIS broadcast.
func ATISLetter(text string) string {
	if l := firstMatch(letterRes, text); l != "" {
		return l
	}
	if m := letterWordRe.FindStringSubmatch(strings.ToUpper(text)); m != nil {
		return m[1][:1]
	}
	return ""
}

// ActiveRunways finds the arrival and departure runways in an ATIS broadcast.
// Either is "" when the broadcast does not name it.
func ActiveRunways(text string) (arrivals, departures string) {
	return firstMatch(arrivalRes, text), firstMatch(departureRes, text)
}

func firstMatch(res []*regexp.Regexp, text string) string {
	text = strings.ToUpper(text)
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// RunwayMatches reports whether runway is watched, ignoring the L/C/R suffix and leading zeros.
func RunwayMatches(runway, watched string) bool {
	r, w := normalizeRunway(runway), normalizeRunway(watched)
	return r != "" && r == w
}

func normalizeRunway(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "RWY")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "LCR")
	return strings.TrimLeft(s, "0")
}
