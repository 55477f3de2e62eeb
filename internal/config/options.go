package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

//go:embed options.yaml
var defaultOptionsYAML []byte

// Options holds the literal choices offered by the dashboard widgets.
type Options struct {
	RankedIndicator   string   `yaml:"ranked_indicator" json:"ranked_indicator"`
	TimePeriods       []string `yaml:"time_periods" json:"time_periods"`
	DefaultTimePeriod string   `yaml:"default_time_period" json:"default_time_period"`
	DefaultGroups     []string `yaml:"default_groups" json:"default_groups"`
	Dimensions        []string `yaml:"dimensions" json:"dimensions"`
	DefaultDimension  string   `yaml:"default_dimension" json:"default_dimension"`
}

var (
	ErrNoTimePeriods = errors.New("options: time_periods is empty")
	ErrNoDimensions  = errors.New("options: dimensions is empty")
)

// DefaultOptions returns the embedded widget options.
func DefaultOptions() Options {
	opts, err := ParseOptions(defaultOptionsYAML)
	if err != nil {
		panic("config: embedded options.yaml is invalid: " + err.Error())
	}
	return opts
}

// LoadOptions reads a YAML options file. An empty path yields the embedded
// defaults.
func LoadOptions(path string) (Options, error) {
	if path == "" {
		return DefaultOptions(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options %s: %w", path, err)
	}
	return ParseOptions(raw)
}

// ParseOptions decodes and validates YAML options. Missing defaults fall back
// to the first listed choice.
func ParseOptions(raw []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return Options{}, fmt.Errorf("decoding options: %w", err)
	}
	if len(opts.TimePeriods) == 0 {
		return Options{}, ErrNoTimePeriods
	}
	if len(opts.Dimensions) == 0 {
		return Options{}, ErrNoDimensions
	}
	if opts.DefaultTimePeriod == "" {
		opts.DefaultTimePeriod = opts.TimePeriods[0]
	}
	if !slices.Contains(opts.TimePeriods, opts.DefaultTimePeriod) {
		return Options{}, fmt.Errorf("options: default_time_period %q is not in time_periods", opts.DefaultTimePeriod)
	}
	if opts.DefaultDimension == "" {
		opts.DefaultDimension = opts.Dimensions[0]
	}
	if !slices.Contains(opts.Dimensions, opts.DefaultDimension) {
		return Options{}, fmt.Errorf("options: default_dimension %q is not in dimensions", opts.DefaultDimension)
	}
	return opts, nil
}

// HasTimePeriod reports whether label is one of the offered time periods.
func (o Options) HasTimePeriod(label string) bool {
	return slices.Contains(o.TimePeriods, label)
}

// HasDimension reports whether dim is one of the offered trend dimensions.
func (o Options) HasDimension(dim string) bool {
	return slices.Contains(o.Dimensions, dim)
}
