package dashboard

import (
	"context"

	"github.com/EmpoweredVote/covid-dashboard/internal/charts"
	"github.com/EmpoweredVote/covid-dashboard/internal/config"
	"github.com/EmpoweredVote/covid-dashboard/internal/dataset"
	"github.com/EmpoweredVote/covid-dashboard/internal/views"
)

// Service runs the transform-and-render pipeline against the memoized dataset.
type Service struct {
	store   *dataset.Store
	options config.Options
}

func NewService(store *dataset.Store, opts config.Options) *Service {
	return &Service{store: store, options: opts}
}

// Result is one full pipeline run.
type Result struct {
	Dataset *dataset.Dataset
	Views   views.Views
	Specs   charts.Specs
}

// Run re-derives every view and spec for the given selections.
func (s *Service) Run(ctx context.Context, sel views.Selections) (Result, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return Result{}, err
	}
	v, err := views.Build(ds, sel, s.options)
	if err != nil {
		return Result{}, err
	}
	return Result{Dataset: ds, Views: v, Specs: charts.Render(v)}, nil
}

// GroupOptions lists the heatmap groups of the loaded dataset. It does not
// depend on any selection.
func (s *Service) GroupOptions(ctx context.Context) (*dataset.Dataset, []string, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ds, views.GroupOptions(views.Aggregate(ds.Observations)), nil
}

func (s *Service) Options() config.Options {
	return s.options
}
