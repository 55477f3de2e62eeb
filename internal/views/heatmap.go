package views

import (
	"math"
	"slices"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
)

// HeatmapRow is one (indicator, group, subgroup, value) cell.
type HeatmapRow struct {
	Indicator      string   `json:"Indicator"`
	ShortIndicator string   `json:"Short Indicator"`
	Group          string   `json:"Group"`
	Subgroup       string   `json:"Subgroup"`
	Value          float64  `json:"Value"`
	LowCI          *float64 `json:"LowCI"`
	HighCI         *float64 `json:"HighCI"`
	Count          int      `json:"Count"`
}

type heatKey struct {
	indicator, group, subgroup string
	value                      float64
}

type heatAcc struct {
	short     string
	values    []float64
	low, high []float64
}

// Aggregate groups rows by (indicator, group, subgroup, value) and averages
// within each key. Rows without a value (nil or NaN) are dropped. Output is sorted by key.
func Aggregate(obs []dataset.Observation) []HeatmapRow {
	acc := map[heatKey]*heatAcc{}
	var keys []heatKey

	for _, o := range obs {
		if o.Value == nil || math.IsNaN(*o.Value) {
			continue
		}
		k := heatKey{o.Indicator, o.Group, o.Subgroup, *o.Value}
		a, ok := acc[k]
		if !ok {
			a = &heatAcc{short: o.DisplayIndicator()}
			acc[k] = a
			keys = append(keys, k)
		}
		a.values = append(a.values, *o.Value)
		if o.LowCI != nil && !math.IsNaN(*o.LowCI) {
			a.low = append(a.low, *o.LowCI)
		}
		if o.HighCI != nil && !math.IsNaN(*o.HighCI) {
			a.high = append(a.high, *o.HighCI)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.indicator != b.indicator {
			return a.indicator < b.indicator
		}
		if a.group != b.group {
			return a.group < b.group
		}
		if a.subgroup != b.subgroup {
			return a.subgroup < b.subgroup
		}
		return a.value < b.value
	})

	out := make([]HeatmapRow, 0, len(keys))
	for _, k := range keys {
		a := acc[k]
		out = append(out, HeatmapRow{
			Indicator:      k.indicator,
			ShortIndicator: a.short,
			Group:          k.group,
			Subgroup:       k.subgroup,
			Value:          stats.Mean(a.values),
			LowCI:          mean(a.low),
			HighCI:         mean(a.high),
			Count:          len(a.values),
		})
	}
	return out
}

func mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	m := stats.Mean(xs)
	return &m
}

// Heatmap filters aggregated rows to the selected groups. An empty selection
// yields an empty, non-nil view.
func Heatmap(agg []HeatmapRow, groups []string) []HeatmapRow {
	out := []HeatmapRow{}
	for _, r := range agg {
		if slices.Contains(groups, r.Group) {
			out = append(out, r)
		}
	}
	return out
}

// GroupOptions lists the distinct groups present in the aggregated data, in
// sorted order.
func GroupOptions(agg []HeatmapRow) []string {
	var out []string
	for _, r := range agg {
		if !slices.Contains(out, r.Group) {
			out = append(out, r.Group)
		}
	}
	sort.Strings(out)
	return out
}
