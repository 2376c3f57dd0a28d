package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const klga = "METAR KLGA 171651Z 25009G19KT 10SM SCT025 BKN120 BKN250 31/21 A2984 RMK AO2 SLP104 T03110211"

func TestClean(t *testing.T) {
	assert.Equal(t, "METAR KLGA 171651Z 25009G19KT 10SM SCT025 BKN120 BKN250 31/21 A2984", Clean(klga))
	assert.Equal(t, "KLGA 171651Z 00000KT", Clean("  KLGA\t171651Z \n 00000KT  "))
	assert.Equal(t, "", Clean("RMK AO2"))
	assert.Equal(t, "", Clean(""))
}

func TestParse(t *testing.T) {
	c := Parse(klga)
	assert.Equal(t, Conditions{
		Temperature: "31°C",
		Wind:        "250@9G19KT",
		Visibility:  "10SM",
		Cloud:       "SCT025",
		Condition:   Cloudy,
	}, c)

	// served from the memo the second time
	assert.Equal(t, c, Parse(klga))
	assert.Equal(t, c, Record{METAR: klga}.Conditions())
}

func TestFields(t *testing.T) {
	cases := []struct {
		name  string
		metar string
		temp  string
		wind  string
		vis   string
		cloud string
		cond  Condition
	}{
		{"freezing", "KLGA 021851Z VRB03KT 1 1/2SM -SN BR OVC008 M05/M07 A3012", "-5°C", "VRB@3KT", "1 1/2SM", "OVC008", Rainy},
		{"calm clear", "KLGA 171651Z 00000KT 10SM CLR 22/12 A3001", "22°C", "CALM", "10SM", "CLR", Sunny},
		{"storm", "KLGA 171651Z 18012KT 3SM TSRA BKN030CB 27/24 A2990", "27°C", "180@12KT", "3SM", "BKN030CB", Rainy},
		{"vicinity", "KLGA 171651Z 18012KT P6SM VCTS FEW040 27/24 A2990", "27°C", "180@12KT", "P6SM", "FEW040", Rainy},
		{"remarks ignored", "KLGA 171651Z 10SM FEW250 RMK RA 11/01", Unavailable, Unavailable, "10SM", "FEW250", Cloudy},
		{"zero temp", "KLGA 171651Z 09005MPS CAVOK M00/M01", "0°C", "090@5MPS", "CAVOK", Unavailable, Cloudy},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.temp, Temperature(c.metar))
			assert.Equal(t, c.wind, Wind(c.metar))
			assert.Equal(t, c.vis, Visibility(c.metar))
			assert.Equal(t, c.cloud, Cloud(c.metar))
			assert.Equal(t, c.cond, ConditionOf(c.metar))
		})
	}
}

func TestGarbageIsUnavailable(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a metar at all",
		"////// ///// ////",
		"KLGA 1/2 /21 25 999KT SM 1/2/3SM",
		"🛩 ✈ °°°",
		"RMK",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			c := Parse(in)
			assert.Equal(t, Unavailable, c.Temperature, "%q", in)
			assert.Equal(t, Unavailable, c.Wind, "%q", in)
			assert.Equal(t, Unavailable, c.Visibility, "%q", in)
			assert.Equal(t, Unavailable, c.Cloud, "%q", in)
			assert.Equal(t, Cloudy, c.Condition, "%q", in)
		})
	}
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "rainy", Rainy.String())
	assert.Panics(t, func() { _ = Condition(9).String() })
}
