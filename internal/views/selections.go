package views

import (
	"errors"
	"fmt"

	"github.com/EmpoweredVote/covid-dashboard/internal/config"
)

var (
	ErrUnknownTimePeriod = errors.New("unknown time period")
	ErrUnknownDimension  = errors.New("unknown demographic dimension")
)

// Selections is the state of the dashboard widgets.
type Selections struct {
	TimePeriod string   `json:"time_period"`
	Groups     []string `json:"groups"`
	Dimension  string   `json:"dimension"`
}

// DefaultSelections is what a fresh page load shows.
func DefaultSelections(opts config.Options) Selections {
	return Selections{
		TimePeriod: opts.DefaultTimePeriod,
		Groups:     append([]string(nil), opts.DefaultGroups...),
		Dimension:  opts.DefaultDimension,
	}
}

// Validate checks the dropdown values against the offered literals. Groups are
// free-form: an unknown group simply matches nothing.
func (s Selections) Validate(opts config.Options) error {
	if !opts.HasTimePeriod(s.TimePeriod) {
		return fmt.Errorf("%w: %q", ErrUnknownTimePeriod, s.TimePeriod)
	}
	if !opts.HasDimension(s.Dimension) {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, s.Dimension)
	}
	return nil
}
