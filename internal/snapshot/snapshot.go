// Package snapshot renders a static PNG of one trend facet, for places where
// the interactive Vega-Lite page is not available (reports, link previews).
package snapshot

import (
	"fmt"
	"io"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// TrendPNG draws one line per subgroup for the given indicator (full or
// short name). Rows without a value or end date are skipped; with nothing
// left the plot is drawn empty.
func TrendPNG(w io.Writer, rows []views.TrendRow, indicator string, width, height vg.Length) error {
	series := map[string]plotter.XYs{}
	var order []string
	title := indicator

	for _, r := range rows {
		if r.Indicator != indicator && r.ShortIndicator != indicator {
			continue
		}
		if r.ShortIndicator != "" {
			title = r.ShortIndicator
		}
		if r.Value == nil || r.TimePeriodEnd == "" {
			continue
		}
		end, err := time.Parse("2006-01-02", r.TimePeriodEnd)
		if err != nil {
			return fmt.Errorf("row %q %s: %w", r.Subgroup, r.TimePeriod, err)
		}
		if _, ok := series[r.Subgroup]; !ok {
			order = append(order, r.Subgroup)
		}
		series[r.Subgroup] = append(series[r.Subgroup], plotter.XY{X: float64(end.Unix()), Y: *r.Value})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time Period End"
	p.Y.Label.Text = "Percent"
	p.X.Tick.Marker = plot.TimeTicks{Format: "Jan 2006"}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, name := range order {
		pts := series[name]
		sort.Slice(pts, func(a, b int) bool { return pts[a].X < pts[b].X })

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("subgroup %q: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(name, line, points)
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
