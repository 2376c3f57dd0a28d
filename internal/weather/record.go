package weather

import "time"

// Record is the latest weather and runway picture of the airport.
// Empty fields were not available from their source.
type Record struct {
	METAR            string
	ArrivalsRunway   string
	DeparturesRunway string
	ATISLetter       string
	UpdatedAt        time.Time
}

// Conditions parses the METAR of the record.
func (r Record) Conditions() Conditions {
	return Parse(r.METAR)
}
