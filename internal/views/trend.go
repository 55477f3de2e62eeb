package views

import (
	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
)

const dateLayout = "2006-01-02"

// TrendRow is one point of a subgroup's time series.
type TrendRow struct {
	Indicator      string   `json:"Indicator"`
	ShortIndicator string   `json:"Short Indicator"`
	Subgroup       string   `json:"Subgroup"`
	Phase          string   `json:"Phase"`
	TimePeriodNum  int      `json:"Time Period Num"`
	TimePeriod     string   `json:"Time Period"`
	TimePeriodEnd  string   `json:"Time Period End Date"`
	Value          *float64 `json:"Value"`
	LowCI          *float64 `json:"LowCI"`
	HighCI         *float64 `json:"HighCI"`
}

// Trend keeps rows of one demographic dimension, minus sentinel phases, in
// source order.
func Trend(obs []dataset.Observation, dimension string) []TrendRow {
	out := []TrendRow{}
	for _, o := range obs {
		if o.IsSentinelPhase() || o.Group != dimension {
			continue
		}
		row := TrendRow{
			Indicator:      o.Indicator,
			ShortIndicator: o.DisplayIndicator(),
			Subgroup:       o.Subgroup,
			Phase:          o.Phase,
			TimePeriodNum:  o.TimePeriodNum,
			TimePeriod:     o.TimePeriodLabel,
			Value:          o.Value,
			LowCI:          o.LowCI,
			HighCI:         o.HighCI,
		}
		if !o.TimePeriodEnd.IsZero() {
			row.TimePeriodEnd = o.TimePeriodEnd.Format(dateLayout)
		}
		out = append(out, row)
	}
	return out
}
