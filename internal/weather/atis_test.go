package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhonetic(t *testing.T) {
	assert.Equal(t, "ALPHA", Phonetic("A"))
	assert.Equal(t, "HOTEL", Phonetic("h"))
	assert.Equal(t, "ZULU", Phonetic("Z"))
	assert.Equal(t, "", Phonetic(""))
	assert.Equal(t, "", Phonetic("AB"))
	assert.Equal(t, "", Phonetic("4"))

	seen := map[string]bool{}
	for c := 'A'; c <= 'Z'; c++ {
		w := Phonetic(string(c))
		assert.NotEmpty(t, w)
		assert.Equal(t, byte(c), w[0])
		seen[w] = true
	}
	assert.Len(t, seen, 26)

	assert.Equal(t, "YOU HAVE INFORMATION ALPHA", Readout("A"))
	assert.Equal(t, "", Readout("?"))
}

func TestATISLetter(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"LGA ATIS INFO H 1651Z. 25009G19KT 10SM", "H"},
		{"LaGuardia information Kilo... advise on initial contact", "K"},
		{"KLGA ATIS Q 2251Z", "Q"},
		{"ILS RWY 22 APCH IN USE", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ATISLetter(c.text), "%q", c.text)
	}
}

func TestActiveRunways(t *testing.T) {
	cases := []struct {
		text     string
		arrivals string
		dep      string
	}{
		{"LGA ATIS INFO H 1651Z. ILS RWY 22 APCH IN USE. DEPARTING RWY 13.", "22", "13"},
		{"LGA ATIS INFO B. VISUAL APCH RWY 4 IN USE. DEPG RWY 31.", "4", "31"},
		{"LNDG AND DEPG RWY 31. NOTAMS...", "31", "31"},
		{"RNAV Z RWY 04L APPROACH IN USE. DEP RWY 04R", "04L", "04R"},
		{"No runway information", "", ""},
	}
	for _, c := range cases {
		arr, dep := ActiveRunways(c.text)
		assert.Equal(t, c.arrivals, arr, "%q", c.text)
		assert.Equal(t, c.dep, dep, "%q", c.text)
	}
}

func TestRunwayMatches(t *testing.T) {
	assert.True(t, RunwayMatches("04", "04"))
	assert.True(t, RunwayMatches("4", "04"))
	assert.True(t, RunwayMatches("04L", "4"))
	assert.True(t, RunwayMatches("RWY 04R", "04"))
	assert.False(t, RunwayMatches("22", "04"))
	assert.False(t, RunwayMatches("14", "04"))
	assert.False(t, RunwayMatches("", "04"))
	assert.False(t, RunwayMatches("", ""))
}
