package views

import (
	"math"
	"sort"

	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
	"github.com/EmpoweredVote/covid-dashboard/internal/regions"
)

const (
	GroupByState  = "By State"
	GroupNational = "National Estimate"
)

// StateRow is one survey row in the state panel's display schema. The JSON
// names are the field names the charts encode.
type StateRow struct {
	Indicator      string   `json:"Indicator"`
	ShortIndicator string   `json:"Short Indicator"`
	State          string   `json:"State"`
	TimePeriodNum  int      `json:"Time Period Num"`
	TimePeriod     string   `json:"Time Period"`
	Incidence      *float64 `json:"Incidence (%)"`
	LowCI          *float64 `json:"LowCI"`
	HighCI         *float64 `json:"HighCI"`
	// ID is nil when the state has no map geometry.
	ID   *int `json:"id"`
	Rank int  `json:"Rank,omitempty"`
}

// StatePanel returns the detail view (every indicator) and the ranked view
// (rankedIndicator only, mapped states only) for one time period.
func StatePanel(obs []dataset.Observation, timePeriod, rankedIndicator string) (detail, ranked []StateRow) {
	detail = []StateRow{}
	ranked = []StateRow{}

	for _, o := range obs {
		if o.Group != GroupByState && o.Group != GroupNational {
			continue
		}
		if o.TimePeriodLabel != timePeriod {
			continue
		}
		row := toStateRow(o)
		detail = append(detail, row)

		if o.Group == GroupByState && o.Indicator == rankedIndicator && rankable(row) {
			ranked = append(ranked, row)
		}
	}

	return detail, rank(ranked)
}

// rankable reports whether a state row takes part in the ranking: it needs a
// finite incidence and map geometry, so territories such as Guam are listed
// in the detail view but never ranked.
func rankable(r StateRow) bool {
	if r.Incidence == nil || math.IsNaN(*r.Incidence) {
		return false
	}
	return r.ID != nil && *r.ID != regions.NationalID
}

func toStateRow(o dataset.Observation) StateRow {
	row := StateRow{
		Indicator:      o.Indicator,
		ShortIndicator: o.DisplayIndicator(),
		State:          o.State,
		TimePeriodNum:  o.TimePeriodNum,
		TimePeriod:     o.TimePeriodLabel,
		Incidence:      o.Value,
		LowCI:          o.LowCI,
		HighCI:         o.HighCI,
	}
	if o.Group == GroupNational || regions.IsNational(o.State) {
		id := regions.NationalID
		row.ID = &id
	} else if id, ok := regions.ID(o.State); ok {
		row.ID = &id
	}
	return row
}

// rank sorts by incidence descending, keeps the first row per state and
// numbers the survivors 1..N.
func rank(rows []StateRow) []StateRow {
	seen := make(map[string]bool, len(rows))
	out := rows[:0]
	for _, r := range rows {
		if seen[r.State] {
			continue
		}
		seen[r.State] = true
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := *out[i].Incidence, *out[j].Incidence
		if a != b {
			return a > b
		}
		return out[i].State < out[j].State
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
