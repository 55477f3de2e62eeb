package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

const (
	fixtureCSV    = "../../internal/dataset/testdata/post_covid_conditions.csv"
	fixtureShorts = "../../internal/dataset/testdata/short_names.tsv"
)

// run parses args the way main does and executes the selected command.
func run(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("DATASET_URL", "")
	t.Setenv("SHORTNAMES_URL", "")
	t.Setenv("DASHBOARD_OPTIONS", "")

	var cli CLI
	parser, err := newParser(&cli)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx.Run(&cli.Globals)
}

func TestViewsCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "views.json")
	require.NoError(t, run(t, "--dataset", fixtureCSV, "--short-names", fixtureShorts,
		"--group", "By Sex", "--dimension", "By Sex", "-o", out, "views"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var v views.Views
	require.NoError(t, json.Unmarshal(raw, &v))

	assert.Equal(t, []string{"By Sex"}, v.Selections.Groups)
	for _, row := range v.Heatmap {
		assert.Equal(t, "By Sex", row.Group)
	}
	for _, row := range v.Trend {
		assert.Equal(t, "By Sex", row.Group)
	}
	assert.Equal(t, "Alabama", v.StateRanked[0].State)
}

func TestViewsCommand_NoGroups(t *testing.T) {
	out := filepath.Join(t.TempDir(), "views.json")
	require.NoError(t, run(t, "--dataset", fixtureCSV, "--no-groups", "-o", out, "views"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var v views.Views
	require.NoError(t, json.Unmarshal(raw, &v))
	assert.Empty(t, v.Heatmap)
}

func TestChartsCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "charts.json")
	require.NoError(t, run(t, "--dataset", fixtureCSV, "-o", out, "charts"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var specs map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &specs))
	assert.Contains(t, specs, "state_panel")
	assert.Contains(t, specs, "heatmap")
	assert.Contains(t, specs, "trend")
}

func TestSnapshotCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trend.png")
	require.NoError(t, run(t, "--dataset", fixtureCSV, "-o", out, "snapshot"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}

func TestUnknownTimePeriod(t *testing.T) {
	err := run(t, "--dataset", fixtureCSV, "--time-period", "Someday", "views")
	assert.ErrorIs(t, err, views.ErrUnknownTimePeriod)
}
