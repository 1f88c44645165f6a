package model

import "sort"

// Unit is one of the independent geographies a margin is estimated for.
type Unit struct {
	Code string // Two-letter code used throughout the pipeline
	Name string // Full name, used only for output ordering
}

// NationalCode marks nationwide polls, which are exported for analysis
// but never enter the per-unit store.
const NationalCode = "US"

// unitNames maps unit code to full name for the 50 states plus D.C.
var unitNames = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DC": "D.C.",
	"DE": "Delaware",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
}

// UnitsByName returns all units sorted ascending by full name. This is
// the unit order the downstream consumer expects within each day.
func UnitsByName() []Unit {
	units := make([]Unit, 0, len(unitNames))
	for code, name := range unitNames {
		units = append(units, Unit{Code: code, Name: name})
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })
	return units
}

// IsUnit reports whether code names a known unit.
func IsUnit(code string) bool {
	_, ok := unitNames[code]
	return ok
}
