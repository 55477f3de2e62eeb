package dashboard

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"slices"

	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

var pageTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"selected": slices.Contains[[]string],
}).Parse(pageHTML))

type pageData struct {
	Selections   views.Selections
	TimePeriods  []string
	GroupOptions []string
	Dimensions   []string
	Snapshot     string
	Specs        template.JS
}

// Page renders the dashboard with all three specs inlined. Every widget
// change resubmits the form, re-running the whole pipeline.
func (h handlers) Page(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	specs, err := json.Marshal(res.Specs)
	if err != nil {
		http.Error(w, "Failed to encode charts", http.StatusInternalServerError)
		return
	}

	opts := h.svc.Options()
	data := pageData{
		Selections:   res.Views.Selections,
		TimePeriods:  opts.TimePeriods,
		GroupOptions: res.Views.GroupOptions,
		Dimensions:   opts.Dimensions,
		Snapshot:     res.Dataset.SnapshotID.String(),
		Specs:        template.JS(specs),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.Printf("[dashboard] failed to execute template: %v", err)
	}
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Long COVID Dashboard</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
  <style>
    body { font-family: sans-serif; margin: 1.5rem; }
    form { display: flex; gap: 2rem; align-items: flex-start; margin: 1rem 0; }
    section { margin-bottom: 2.5rem; }
    footer { color: #777; font-size: 0.8rem; }
  </style>
</head>
<body>
  <h1>Long COVID in the United States</h1>

  <section>
    <form method="get">
      <label>Time Period:
        <select name="time_period" onchange="this.form.submit()">
          {{- range .TimePeriods}}
          <option value="{{.}}"{{if eq . $.Selections.TimePeriod}} selected{{end}}>{{.}}</option>
          {{- end}}
        </select>
      </label>
      <input type="hidden" name="groups_set" value="1">
      <input type="hidden" name="dimension" value="{{.Selections.Dimension}}">
      {{- range .Selections.Groups}}
      <input type="hidden" name="group" value="{{.}}">
      {{- end}}
    </form>
    <div id="state-panel"></div>
  </section>

  <section>
    <form method="get">
      <input type="hidden" name="time_period" value="{{.Selections.TimePeriod}}">
      <input type="hidden" name="dimension" value="{{.Selections.Dimension}}">
      <input type="hidden" name="groups_set" value="1">
      <label>Groups:
        <select name="group" multiple size="6" onchange="this.form.submit()">
          {{- range .GroupOptions}}
          <option value="{{.}}"{{if selected $.Selections.Groups .}} selected{{end}}>{{.}}</option>
          {{- end}}
        </select>
      </label>
    </form>
    <div id="heatmap"></div>
  </section>

  <section>
    <form method="get">
      <input type="hidden" name="time_period" value="{{.Selections.TimePeriod}}">
      <input type="hidden" name="groups_set" value="1">
      {{- range .Selections.Groups}}
      <input type="hidden" name="group" value="{{.}}">
      {{- end}}
      <label>Demographic:
        <select name="dimension" onchange="this.form.submit()">
          {{- range .Dimensions}}
          <option value="{{.}}"{{if eq . $.Selections.Dimension}} selected{{end}}>{{.}}</option>
          {{- end}}
        </select>
      </label>
    </form>
    <div id="trend"></div>
  </section>

  <footer>Dataset snapshot {{.Snapshot}}</footer>

  <script>
    const specs = {{.Specs}};
    vegaEmbed("#state-panel", specs.state_panel, {actions: false});
    vegaEmbed("#heatmap", specs.heatmap, {actions: false});
    vegaEmbed("#trend", specs.trend, {actions: false});
  </script>
</body>
</html>
`
