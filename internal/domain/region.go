package domain

import "strings"

// Region is a normalized state-level label used to key fuel price lookups.
// The canonical representation is the 2-letter USPS code ("AZ", "CA").
type Region string

// usStates maps USPS codes to full state names. Full names are needed by
// price sources that key their tables on the spelled-out name.
var usStates = map[Region]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

var stateCodeByName = func() map[string]Region {
	m := make(map[string]Region, len(usStates))
	for code, name := range usStates {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// NormalizeRegion converts a state label (2-letter code or full name, any
// case) to its canonical code. The second return value reports whether the
// label named a known region. Normalization happens once, at the address
// resolver boundary; everything downstream sees only canonical codes.
func NormalizeRegion(label string) (Region, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	if len(label) == 2 {
		code := Region(strings.ToUpper(label))
		if _, ok := usStates[code]; ok {
			return code, true
		}
		return "", false
	}

	if code, ok := stateCodeByName[strings.ToLower(label)]; ok {
		return code, true
	}
	return "", false
}

// FullName returns the spelled-out state name, or "" for unknown codes.
func (r Region) FullName() string { return usStates[r] }
