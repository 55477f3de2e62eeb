package charts

import (
	"github.com/EmpoweredVote/covid-dashboard/internal/regions"
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

// RegionParam is the map selection that drives the detail bar chart.
const RegionParam = "region"

// detailFilter shows the selected region, or the national aggregate while
// nothing is selected.
const detailFilter = "length(data('" + RegionParam + "_store')) ? vlSelectionTest('" +
	RegionParam + "_store', datum) : datum.id == 0"

// StatePanel is the choropleth of ranked incidence stacked over the detail
// bar chart for the clicked state.
func StatePanel(ranked, detail []views.StateRow) Spec {
	topo := Spec{
		"url":    TopologyURL,
		"format": Spec{"type": "topojson", "feature": "states"},
	}

	color := titled(field("Incidence (%)", "quantitative"), "Incidence (%)")
	scale := Spec{"scheme": "oranges"}
	if lo, hi, ok := incidenceRange(ranked); ok {
		scale["domain"] = []float64{lo, hi}
	}
	color["scale"] = scale

	background := Spec{
		"data": topo,
		"mark": Spec{"type": "geoshape", "fill": "lightgray", "stroke": "white"},
	}

	choropleth := Spec{
		"data": topo,
		"transform": []any{
			Spec{
				"lookup": "id",
				"from": Spec{
					"data":   Spec{"values": ranked},
					"key":    "id",
					"fields": []string{"Incidence (%)", "State", "Rank", "Time Period"},
				},
			},
		},
		"params": []any{
			Spec{
				"name":   RegionParam,
				"select": Spec{"type": "point", "fields": []string{"id"}},
				"value":  []any{Spec{"id": regions.NationalID}},
			},
		},
		"mark": Spec{"type": "geoshape", "stroke": "white"},
		"encoding": Spec{
			"color": color,
			"opacity": Spec{
				"condition": Spec{"param": RegionParam, "value": 1},
				"value":     0.75,
			},
			"tooltip": []any{
				field("State", "nominal"),
				field("Incidence (%)", "quantitative"),
				field("Rank", "quantitative"),
			},
		},
	}

	mapView := Spec{
		"title":      "Long Covid Rates by State",
		"width":      650,
		"height":     400,
		"projection": Spec{"type": Projection},
		"layer":      []any{background, choropleth},
	}

	bars := Spec{
		"title":     "Impact of Long Covid in Selected State",
		"width":     650,
		"data":      Spec{"values": detail},
		"transform": []any{Spec{"filter": detailFilter}},
		"mark":      "bar",
		"encoding": Spec{
			"y": Spec{
				"field": "Short Indicator",
				"type":  "nominal",
				"title": "Indication",
				"sort":  indicatorOrder(detail),
			},
			"x": Spec{
				"field": "Incidence (%)",
				"type":  "quantitative",
				"title": "Incidence (%)",
				"scale": Spec{"domain": []int{0, 100}},
			},
			"tooltip": []any{
				field("State", "nominal"),
				field("Indicator", "nominal"),
				field("Incidence (%)", "quantitative"),
				field("LowCI", "quantitative"),
				field("HighCI", "quantitative"),
			},
		},
	}

	return Spec{
		"$schema": SchemaURL,
		"vconcat": []any{mapView, bars},
	}
}

func incidenceRange(rows []views.StateRow) (lo, hi float64, ok bool) {
	for _, r := range rows {
		if r.Incidence == nil {
			continue
		}
		v := *r.Incidence
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}

// indicatorOrder lists display indicators in first-seen order.
func indicatorOrder(rows []views.StateRow) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, r := range rows {
		if !seen[r.ShortIndicator] {
			seen[r.ShortIndicator] = true
			out = append(out, r.ShortIndicator)
		}
	}
	return out
}
