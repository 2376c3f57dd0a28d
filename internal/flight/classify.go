package flight

import "strings"

// airlines maps ICAO and IATA airline designators to names.
var airlines = map[string]string{
	"EDV": "Endeavor",
	"DAL": "Delta",
	"DL":  "Delta",
	"AAL": "American",
	"AA":  "American",
	"UAL": "United",
	"UA":  "United",
	"JBU": "JetBlue",
	"B6":  "JetBlue",
	"SWA": "Southwest",
	"WN":  "Southwest",
	"ASA": "Alaska",
	"AS":  "Alaska",
	"NKS": "Spirit",
	"NK":  "Spirit",
	"FFT": "Frontier",
	"F9":  "Frontier",
	"AAY": "Allegiant",
	"G4":  "Allegiant",
	"HAL": "Hawaiian",
	"HA":  "Hawaiian",
	"ACA": "Air Canada",
	"AC":  "Air Canada",
	"JZA": "Jazz",
	"QK":  "Jazz",
	"WJA": "WestJet",
	"WS":  "WestJet",
	"RPA": "Republic",
	"YX":  "Republic",
	"ENY": "Envoy",
	"MQ":  "Envoy",
	"PDT": "Piedmont",
	"PT":  "Piedmont",
}

var airports = map[string]string{
	"PWM": "Portland",
	"BGR": "Bangor",
	"BOS": "Boston",
	"PVD": "Providence",
	"BDL": "Hartford",
	"DCA": "Washington",
	"IAD": "Dulles",
	"BWI": "Baltimore",
	"PHL": "Philadelphia",
	"EWR": "Newark",
	"LGA": "New York",
	"ORD": "Chicago",
	"MDW": "Midway",
	"DTW": "Detroit",
	"MSP": "Minneapolis",
	"ATL": "Atlanta",
	"MIA": "Miami",
	"FLL": "Fort Lauderdale",
	"TPA": "Tampa",
	"MCO": "Orlando",
	"CLT": "Charlotte",
	"RDU": "Raleigh",
	"DEN": "Denver",
	"PHX": "Phoenix",
	"LAS": "Las Vegas",
	"LAX": "Los Angeles",
	"SAN": "San Diego",
	"SFO": "San Francisco",
	"OAK": "Oakland",
	"SJC": "San Jose",
	"SEA": "Seattle",
	"PDX": "Portland OR",
	"YYZ": "Toronto",
	"YTZ": "Toronto City",
	"YUL": "Montreal",
	"YOW": "Ottawa",
	"YQB": "Quebec City",
	"YHZ": "Halifax",
	"YVR": "Vancouver",
	"YYC": "Calgary",
	"YEG": "Edmonton",
	"YWG": "Winnipeg",
}

var canadianAirports = map[string]bool{
	"YYZ": true, "YTZ": true, "YUL": true, "YOW": true, "YQB": true, "YHZ": true,
	"YVR": true, "YYC": true, "YEG": true, "YWG": true, "YXE": true, "YQR": true,
	"YYJ": true, "YLW": true, "YXU": true, "YQM": true, "YSJ": true, "YYT": true,
	"YQT": true, "YKF": true, "YHM": true, "YXY": true, "YZF": true, "YFC": true,
}

// aircraft maps ICAO type designators to the names shown on the panel.
var aircraft = map[string]string{
	"A319": "Airbus A319",
	"A320": "Airbus A320",
	"A20N": "Airbus A320neo",
	"A321": "Airbus A321",
	"A21N": "Airbus A321neo",
	"BCS1": "Airbus A220-100",
	"BCS3": "Airbus A220-300",
	"B712": "Boeing 717",
	"B737": "Boeing 737",
	"B738": "Boeing 737-800",
	"B739": "Boeing 737-900",
	"B38M": "Boeing 737 MAX 8",
	"B39M": "Boeing 737 MAX 9",
	"B752": "Boeing 757-200",
	"CRJ2": "Canadair CRJ-200",
	"CRJ7": "Canadair CRJ-700",
	"CRJ9": "Canadair CRJ-900",
	"DH8D": "De Havilland Canada Dash 8",
	"E170": "Embraer 170",
	"E75L": "Embraer 175",
	"E75S": "Embraer 175",
	"E190": "Embraer 190",
	"E145": "Embraer 145",
	"CL30": "Bombardier Challenger 300",
	"CL60": "Bombardier Challenger 600",
	"GLEX": "Bombardier Global Express",
	"GLF4": "Gulfstream IV",
	"GLF5": "Gulfstream V",
	"GLF6": "Gulfstream G650",
	"C56X": "Cessna Citation Excel",
	"C680": "Cessna Citation Sovereign",
	"C700": "Cessna Citation Longitude",
	"FA50": "Dassault Falcon 50",
	"H25B": "Hawker 800",
	"LJ60": "Learjet 60",
	"H60":  "Sikorsky H-60",
	"EC35": "Eurocopter EC135",
	"R44":  "Robinson R44",
}

var helicopters = map[string]bool{
	"H60": true, "EC35": true, "AS35": true, "BK17": true, "H500": true,
	"R22": true, "R44": true, "R66": true, "EC20": true, "EC45": true,
}

var (
	// civil registration prefixes of privately operated aircraft
	registrationPrefixes = []string{"N", "G-", "C-", "D-", "F-", "I-", "PH-", "OO-", "HB-", "LX-", "VP-", "M-"}
	businessJets         = []string{"GLF", "GLEX", "GL5T", "GL7T", "CL30", "CL35", "CL60", "C56X", "C680", "C700", "FA50", "FA7X", "F900", "H25B", "LJ60", "LJ45"}
	canadianMarkers      = []string{"CANADAIR", "BOMBARDIER", "DE HAVILLAND CANADA", "CRJ", "DH8", "BCS1", "BCS3"}
)

// AirlineCode returns the designator the callsign starts with, trying the
// three letter ICAO code before the two letter IATA code.
func AirlineCode(callsign string) string {
	callsign = strings.ToUpper(callsign)
	for _, n := range []int{3, 2} {
		if len(callsign) <= n {
			continue
		}
		if _, ok := airlines[callsign[:n]]; ok {
			return callsign[:n]
		}
	}
	return ""
}

// AirlineName turns "UAL123" into "United 123", unknown callsigns are returned as is.
func AirlineName(callsign string) string {
	code := AirlineCode(callsign)
	if code == "" {
		return callsign
	}
	return airlines[code] + " " + callsign[len(code):]
}

// Airline returns the airline operating callsign, "" when unknown.
func Airline(callsign string) string {
	return airlines[AirlineCode(callsign)]
}

// AirportName turns "ORD" into "Chicago", unknown codes are returned as is.
func AirportName(code string) string {
	if n, ok := airports[strings.ToUpper(code)]; ok {
		return n
	}
	return code
}

// AircraftName turns an ICAO type designator into a readable name, unknown codes are returned as is.
func AircraftName(code string) string {
	if n, ok := aircraft[strings.ToUpper(code)]; ok {
		return n
	}
	return code
}

// IsCanadianAirport accepts IATA codes and the C-prefixed ICAO form.
func IsCanadianAirport(code string) bool {
	code = strings.ToUpper(code)
	if len(code) == 4 && code[0] == 'C' {
		code = code[1:]
	}
	return canadianAirports[code]
}

// IsCanadianAircraft reports whether the type name or designator shows a Canadian manufacturer.
func IsCanadianAircraft(aircraftType string) bool {
	t := strings.ToUpper(aircraftType)
	for _, m := range canadianMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

func IsHelicopter(typeCode string) bool {
	return helicopters[strings.ToUpper(typeCode)]
}

// IsPrivateJet reports aircraft not flying for an airline which either fly
// under their registration or are a business jet type.
func IsPrivateJet(callsign, typeCode string) bool {
	if AirlineCode(callsign) != "" || IsHelicopter(typeCode) {
		return false
	}

	callsign, typeCode = strings.ToUpper(callsign), strings.ToUpper(typeCode)
	for _, j := range businessJets {
		if strings.HasPrefix(typeCode, j) {
			return true
		}
	}
	for _, p := range registrationPrefixes {
		if strings.HasPrefix(callsign, p) && len(callsign) > len(p) {
			return true
		}
	}
	return false
}
