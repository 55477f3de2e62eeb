// Command covidviews runs the dashboard pipeline once and writes the derived
// views, the Vega-Lite specs or a trend PNG to a file or stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/EmpoweredVote/covid-dashboard/internal/charts"
	"github.com/EmpoweredVote/covid-dashboard/internal/config"
	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
	"github.com/EmpoweredVote/covid-dashboard/internal/snapshot"
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

// Globals are shared by every subcommand.
type Globals struct {
	Dataset    string        `help:"Survey CSV URL or path." default:"${dataset_url}" env:"DATASET_URL"`
	ShortNames string        `help:"Indicator short-name table URL or path." env:"SHORTNAMES_URL"`
	Options    string        `help:"YAML widget options file." env:"DASHBOARD_OPTIONS"`
	Timeout    time.Duration `help:"Download timeout." default:"30s"`

	TimePeriod string   `help:"Time period label for the state panel." name:"time-period"`
	Group      []string `help:"Heatmap group (repeatable)." sep:"none"`
	NoGroups   bool     `help:"Render the heatmap with no groups selected." name:"no-groups"`
	Dimension  string   `help:"Demographic dimension for the trend panel."`

	Output string `help:"Output file (default stdout)." short:"o" type:"path"`
}

type CLI struct {
	Globals

	Views    ViewsCmd    `cmd:"" help:"Write the derived views as JSON."`
	Charts   ChartsCmd   `cmd:"" help:"Write the three Vega-Lite specs as JSON."`
	Snapshot SnapshotCmd `cmd:"" help:"Write one indicator's trend panel as PNG."`
}

type ViewsCmd struct{}

func (c *ViewsCmd) Run(g *Globals) error {
	v, _, err := g.build()
	if err != nil {
		return err
	}
	return g.writeJSON(v)
}

type ChartsCmd struct{}

func (c *ChartsCmd) Run(g *Globals) error {
	v, _, err := g.build()
	if err != nil {
		return err
	}
	return g.writeJSON(charts.Render(v))
}

type SnapshotCmd struct {
	Indicator string `help:"Indicator or short name to plot (default: the ranked indicator)."`
}

func (c *SnapshotCmd) Run(g *Globals) error {
	v, opts, err := g.build()
	if err != nil {
		return err
	}
	indicator := c.Indicator
	if indicator == "" {
		indicator = opts.RankedIndicator
	}
	return g.write(func(w io.Writer) error {
		return snapshot.TrendPNG(w, v.Trend, indicator, snapshot.DefaultWidth, snapshot.DefaultHeight)
	})
}

func (g *Globals) selections(opts config.Options) views.Selections {
	sel := views.DefaultSelections(opts)
	if g.TimePeriod != "" {
		sel.TimePeriod = g.TimePeriod
	}
	if g.Dimension != "" {
		sel.Dimension = g.Dimension
	}
	switch {
	case g.NoGroups:
		sel.Groups = []string{}
	case len(g.Group) > 0:
		sel.Groups = g.Group
	}
	return sel
}

func (g *Globals) build() (views.Views, config.Options, error) {
	opts, err := config.LoadOptions(g.Options)
	if err != nil {
		return views.Views{}, config.Options{}, err
	}
	ds, err := dataset.NewLoader(g.Dataset, g.ShortNames, g.Timeout).Load(context.Background())
	if err != nil {
		return views.Views{}, config.Options{}, fmt.Errorf("load dataset: %w", err)
	}
	v, err := views.Build(ds, g.selections(opts), opts)
	return v, opts, err
}

func (g *Globals) writeJSON(v any) error {
	return g.write(func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	})
}

func (g *Globals) write(fn func(io.Writer) error) error {
	if g.Output == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(g.Output)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("covidviews"),
		kong.Description("Derive long-COVID dashboard views and charts from the survey dataset."),
		kong.UsageOnError(),
		kong.Vars{"dataset_url": config.DefaultDatasetURL},
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}
