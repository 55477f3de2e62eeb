// Package regions maps US state names to the numeric identifiers used by the
// us-10m topology, so survey rows can be joined to map geometry.
package regions

import (
	"strings"

	"golang.org/x/text/cases"
)

// NationalName is the State value the survey uses for the national estimate.
const NationalName = "United States"

// NationalID is the sentinel identifier for the national aggregate. It has no
// geometry in the topology.
const NationalID = 0

// Region is one state (or DC) with its FIPS code and an approximate centroid.
type Region struct {
	ID   int
	Name string
	Abbr string
	Lat  float64
	Lng  float64
}

var all = []Region{
	{1, "Alabama", "AL", 32.8, -86.8},
	{2, "Alaska", "AK", 64.2, -149.5},
	{4, "Arizona", "AZ", 34.3, -111.7},
	{5, "Arkansas", "AR", 34.9, -92.4},
	{6, "California", "CA", 37.2, -119.4},
	{8, "Colorado", "CO", 39.0, -105.5},
	{9, "Connecticut", "CT", 41.6, -72.7},
	{10, "Delaware", "DE", 39.0, -75.5},
	{11, "District of Columbia", "DC", 38.9, -77.0},
	{12, "Florida", "FL", 28.6, -82.4},
	{13, "Georgia", "GA", 32.7, -83.4},
	{15, "Hawaii", "HI", 20.3, -156.4},
	{16, "Idaho", "ID", 44.4, -114.6},
	{17, "Illinois", "IL", 40.0, -89.2},
	{18, "Indiana", "IN", 39.9, -86.3},
	{19, "Iowa", "IA", 42.1, -93.5},
	{20, "Kansas", "KS", 38.5, -98.4},
	{21, "Kentucky", "KY", 37.5, -85.3},
	{22, "Louisiana", "LA", 31.1, -92.0},
	{23, "Maine", "ME", 45.4, -69.2},
	{24, "Maryland", "MD", 39.0, -76.8},
	{25, "Massachusetts", "MA", 42.3, -71.8},
	{26, "Michigan", "MI", 44.3, -85.4},
	{27, "Minnesota", "MN", 46.3, -94.3},
	{28, "Mississippi", "MS", 32.7, -89.7},
	{29, "Missouri", "MO", 38.4, -92.5},
	{30, "Montana", "MT", 47.0, -109.6},
	{31, "Nebraska", "NE", 41.5, -99.8},
	{32, "Nevada", "NV", 39.3, -116.6},
	{33, "New Hampshire", "NH", 43.7, -71.6},
	{34, "New Jersey", "NJ", 40.2, -74.7},
	{35, "New Mexico", "NM", 34.4, -106.1},
	{36, "New York", "NY", 42.9, -75.5},
	{37, "North Carolina", "NC", 35.6, -79.4},
	{38, "North Dakota", "ND", 47.5, -100.5},
	{39, "Ohio", "OH", 40.3, -82.8},
	{40, "Oklahoma", "OK", 35.6, -97.5},
	{41, "Oregon", "OR", 43.9, -120.6},
	{42, "Pennsylvania", "PA", 40.9, -77.8},
	{44, "Rhode Island", "RI", 41.7, -71.5},
	{45, "South Carolina", "SC", 33.9, -80.9},
	{46, "South Dakota", "SD", 44.4, -100.2},
	{47, "Tennessee", "TN", 35.9, -86.4},
	{48, "Texas", "TX", 31.5, -99.3},
	{49, "Utah", "UT", 39.3, -111.7},
	{50, "Vermont", "VT", 44.1, -72.7},
	{51, "Virginia", "VA", 37.5, -78.9},
	{53, "Washington", "WA", 47.4, -120.5},
	{54, "West Virginia", "WV", 38.6, -80.6},
	{55, "Wisconsin", "WI", 44.6, -89.9},
	{56, "Wyoming", "WY", 43.0, -107.6},
}

var byKey = func() map[string]Region {
	m := make(map[string]Region, len(all))
	for _, r := range all {
		m[canon(r.Name)] = r
	}
	return m
}()

// canon folds case and collapses whitespace so "new  york" matches "New York".
func canon(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// All returns the known regions ordered by identifier.
func All() []Region {
	out := make([]Region, len(all))
	copy(out, all)
	return out
}

// Lookup returns the region for a state name. The national aggregate is not a
// region; use ID for the sentinel.
func Lookup(name string) (Region, bool) {
	r, ok := byKey[canon(name)]
	return r, ok
}

// ID resolves a state name to its identifier. United States resolves to
// NationalID; unknown names report false.
func ID(name string) (int, bool) {
	if IsNational(name) {
		return NationalID, true
	}
	r, ok := Lookup(name)
	if !ok {
		return 0, false
	}
	return r.ID, true
}

// IsNational reports whether name denotes the national aggregate.
func IsNational(name string) bool {
	return canon(name) == canon(NationalName)
}
