// Package app wires configuration, series loading and the estimators
// together.
package app

import (
	"fmt"

	"github.com/carbonshift/ren247/config"
	"github.com/carbonshift/ren247/core/report"
	"github.com/carbonshift/ren247/core/sizing"
	"github.com/carbonshift/ren247/core/timeseries"
	"github.com/carbonshift/ren247/infra/logger"
	"github.com/carbonshift/ren247/infra/seriesio"
)

// Service runs the sizing workflows described by the configuration.
type Service struct {
	cfg *config.Config
	log logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) *Service {
	return &Service{cfg: cfg, log: logger.New("service")}
}

// LoadSeries reads the configured CSV inputs into an aligned series.
func (s *Service) LoadSeries() (timeseries.Series, error) {
	series, err := seriesio.Load(s.cfg.Inputs.RenewablePath, s.cfg.Inputs.FacilityPath)
	if err != nil {
		return timeseries.Series{}, fmt.Errorf("load series: %w", err)
	}
	s.log.Debugf("loaded %d steps from %s and %s",
		series.Len(), s.cfg.Inputs.RenewablePath, s.cfg.Inputs.FacilityPath)
	return series, nil
}

// Size runs the incremental finder, cross-checks it with the binary search
// for the configured model, and estimates the energy a battery of the found
// capacity still leaves uncovered.
func (s *Service) Size(series timeseries.Series) (report.Sizing, error) {
	opts := s.cfg.Sizing.Options()
	required := sizing.RequiredCapacity(series, opts)

	maxSize := s.cfg.Sizing.MaxSizeMWh
	if maxSize <= 0 {
		maxSize = sizing.DefaultMaxSize(series)
		s.log.Debugf("derived search bound %.3f MWh from total deficit", maxSize)
	}

	var searched sizing.Capacity
	switch s.cfg.Sizing.Model {
	case config.ModelCLC:
		var err error
		searched, err = sizing.SearchCLC(series, maxSize, s.cfg.Battery, opts)
		if err != nil {
			return report.Sizing{}, fmt.Errorf("search: %w", err)
		}
	default:
		searched = sizing.SearchIdeal(series, maxSize, opts)
	}

	uncovered := 0.0
	if !required.Infeasible {
		var err error
		uncovered, err = sizing.ApplyBattery(required.MWh, series, s.cfg.Battery)
		if err != nil {
			return report.Sizing{}, fmt.Errorf("apply battery: %w", err)
		}
	}

	rep := report.NewSizing(s.cfg.Sizing.Model, required, searched, uncovered, report.Summarize(series))
	s.log.Infof("sizing run %s: required=%s searched=%s uncovered=%.3f MWh",
		rep.RunID, required, searched, uncovered)
	return rep, nil
}

// Apply estimates the uncovered energy for a fixed battery capacity.
func (s *Service) Apply(series timeseries.Series, capacityMWh float64) (float64, error) {
	uncovered, err := sizing.ApplyBattery(capacityMWh, series, s.cfg.Battery)
	if err != nil {
		return 0, fmt.Errorf("apply battery: %w", err)
	}
	s.log.Infof("battery of %.3f MWh leaves %.3f MWh uncovered", capacityMWh, uncovered)
	return uncovered, nil
}
