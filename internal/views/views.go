// Package views derives the three dashboard panels from the survey dataset.
// Every function here is pure: the same dataset and selections always produce
// the same views, and the dataset is never modified.
package views

import (
	"github.com/EmpoweredVote/covid-dashboard/internal/config"
	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
)

// Views is everything the charts consume for one set of selections.
type Views struct {
	Selections   Selections   `json:"selections"`
	StateDetail  []StateRow   `json:"state_detail"`
	StateRanked  []StateRow   `json:"state_ranked"`
	Heatmap      []HeatmapRow `json:"heatmap"`
	GroupOptions []string     `json:"group_options"`
	Trend        []TrendRow   `json:"trend"`
}

// Build validates the selections and derives all views.
func Build(ds *dataset.Dataset, sel Selections, opts config.Options) (Views, error) {
	if err := sel.Validate(opts); err != nil {
		return Views{}, err
	}

	detail, ranked := StatePanel(ds.Observations, sel.TimePeriod, opts.RankedIndicator)
	agg := Aggregate(ds.Observations)

	return Views{
		Selections:   sel,
		StateDetail:  detail,
		StateRanked:  ranked,
		Heatmap:      Heatmap(agg, sel.Groups),
		GroupOptions: GroupOptions(agg),
		Trend:        Trend(ds.Observations, sel.Dimension),
	}, nil
}
