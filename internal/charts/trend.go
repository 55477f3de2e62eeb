package charts

import (
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

// SubgroupParam is the legend-bound selection shared by every trend facet.
const SubgroupParam = "subgroup"

// Trend draws one facet per indicator: a line per subgroup over its
// confidence band. Clicking a legend entry highlights that subgroup.
func Trend(rows []views.TrendRow) Spec {
	if rows == nil {
		rows = []views.TrendRow{}
	}

	x := titled(field("Time Period End Date", "temporal"), "Time Period End")
	color := titled(field("Subgroup", "nominal"), "Subgroup")
	highlight := func(on, off float64) Spec {
		return Spec{
			"condition": Spec{"param": SubgroupParam, "value": on},
			"value":     off,
		}
	}

	band := Spec{
		"mark": "errorband",
		"encoding": Spec{
			"x":       x,
			"y":       titled(field("LowCI", "quantitative"), "Percent"),
			"y2":      Spec{"field": "HighCI"},
			"color":   color,
			"opacity": highlight(0.3, 0.05),
		},
	}

	line := Spec{
		"params": []any{
			Spec{
				"name":   SubgroupParam,
				"select": Spec{"type": "point", "fields": []string{"Subgroup"}},
				"bind":   "legend",
			},
		},
		"mark": Spec{"type": "line", "point": true},
		"encoding": Spec{
			"x":       x,
			"y":       titled(field("Value", "quantitative"), "Percent"),
			"color":   color,
			"opacity": highlight(1, 0.15),
			"tooltip": []any{
				field("Subgroup", "nominal"),
				field("Time Period", "nominal"),
				field("Value", "quantitative"),
				field("LowCI", "quantitative"),
				field("HighCI", "quantitative"),
			},
		},
	}

	return Spec{
		"$schema": SchemaURL,
		"data":    Spec{"values": rows},
		"facet":   titled(field("Short Indicator", "nominal"), ""),
		"columns": 3,
		"spec": Spec{
			"width":  220,
			"height": 160,
			"layer":  []any{band, line},
		},
		"resolve": Spec{"scale": Spec{"x": "independent", "y": "independent"}},
	}
}
