// Package charts turns dashboard views into Vega-Lite specifications. Specs
// are plain maps so encoding/json emits them with sorted keys; the same views
// always serialize to the same bytes.
package charts

import (
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

const (
	SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"
	// TopologyURL is the us-10m TopoJSON whose state feature ids are FIPS codes.
	TopologyURL = "https://cdn.jsdelivr.net/npm/vega-datasets@v1.29.0/data/us-10m.json"
	Projection  = "albersUsa"
)

// Spec is one Vega-Lite specification (or a fragment of one).
type Spec map[string]any

// Specs holds the three panels of the dashboard.
type Specs struct {
	StatePanel Spec `json:"state_panel"`
	Heatmap    Spec `json:"heatmap"`
	Trend      Spec `json:"trend"`
}

// Render builds all three specs from one set of views.
func Render(v views.Views) Specs {
	return Specs{
		StatePanel: StatePanel(v.StateRanked, v.StateDetail),
		Heatmap:    Heatmap(v.Heatmap, v.Selections.Groups),
		Trend:      Trend(v.Trend),
	}
}

func field(name, typ string) Spec {
	return Spec{"field": name, "type": typ}
}

func titled(s Spec, title string) Spec {
	s["title"] = title
	return s
}
