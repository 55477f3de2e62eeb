package charts

import (
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

// Heatmap facets one rect chart per selected group, in selection order, with
// independent x scales so each facet only lists its own subgroups.
func Heatmap(rows []views.HeatmapRow, groups []string) Spec {
	if groups == nil {
		groups = []string{}
	}
	if rows == nil {
		rows = []views.HeatmapRow{}
	}

	return Spec{
		"$schema": SchemaURL,
		"data":    Spec{"values": rows},
		"facet": Spec{
			"column": Spec{
				"field": "Group",
				"type":  "ordinal",
				"title": "",
				"sort":  groups,
			},
		},
		"spec": Spec{
			"mark": "rect",
			"encoding": Spec{
				"y": titled(field("Short Indicator", "ordinal"), ""),
				"x": titled(field("Subgroup", "ordinal"), ""),
				"color": Spec{
					"field": "Value",
					"type":  "quantitative",
					"title": "Percent Response",
					"scale": Spec{"scheme": "viridis"},
				},
				"tooltip": []any{
					titled(field("Indicator", "ordinal"), "Indicator"),
					titled(field("Subgroup", "ordinal"), "Subgroup"),
					titled(field("Value", "quantitative"), "Percent Response"),
				},
			},
		},
		"resolve": Spec{"scale": Spec{"x": "independent"}},
		"config":  Spec{"axis": Spec{"labelLimit": 1000}},
	}
}
