// Package report summarises input series and sizing runs for export.
package report

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/carbonshift/ren247/core/sizing"
	"github.com/carbonshift/ren247/core/timeseries"
)

// SeriesStats describes the two input series over the whole horizon.
type SeriesStats struct {
	Steps           int     `json:"steps"`
	RenewableMeanMW float64 `json:"renewable_mean_mw"`
	RenewableStdMW  float64 `json:"renewable_std_mw"`
	RenewableMaxMW  float64 `json:"renewable_max_mw"`
	FacilityMeanMW  float64 `json:"facility_mean_mw"`
	FacilityMaxMW   float64 `json:"facility_max_mw"`

	// Energy totals over surplus and deficit steps respectively.
	TotalSurplusMWh float64 `json:"total_surplus_mwh"`
	TotalDeficitMWh float64 `json:"total_deficit_mwh"`

	// CapacityFactor is mean renewable output over its peak.
	CapacityFactor float64 `json:"capacity_factor"`
}

// Summarize computes SeriesStats. A zero-length series yields zero stats.
func Summarize(s timeseries.Series) SeriesStats {
	if s.Len() == 0 {
		return SeriesStats{}
	}

	facility := make([]float64, s.Len())
	stats := SeriesStats{Steps: s.Len()}
	for i := 0; i < s.Len(); i++ {
		facility[i] = s.Facility[i].AvgDCPowerMW
		if net := s.Net(i); net > 0 {
			stats.TotalSurplusMWh += net
		} else {
			stats.TotalDeficitMWh += -net
		}
	}

	stats.RenewableMeanMW = stat.Mean(s.RenewableMW, nil)
	stats.RenewableStdMW = stat.StdDev(s.RenewableMW, nil)
	stats.RenewableMaxMW = floats.Max(s.RenewableMW)
	stats.FacilityMeanMW = stat.Mean(facility, nil)
	stats.FacilityMaxMW = floats.Max(facility)
	if stats.RenewableMaxMW > 0 {
		stats.CapacityFactor = stats.RenewableMeanMW / stats.RenewableMaxMW
	}
	return stats
}

// Sizing ties one estimator run to its inputs and results.
type Sizing struct {
	RunID string `json:"run_id"`
	Model string `json:"model"`

	// Required is the incremental finder's answer, Searched the binary
	// search cross-check for the configured model.
	Required sizing.Capacity `json:"required"`
	Searched sizing.Capacity `json:"searched"`

	// UncoveredMWh is the energy a battery of the required capacity still
	// leaves to non-renewable sources.
	UncoveredMWh float64 `json:"uncovered_mwh"`

	Stats SeriesStats `json:"stats"`
}

// NewSizing stamps a report with a fresh run identifier.
func NewSizing(model string, required, searched sizing.Capacity, uncoveredMWh float64, stats SeriesStats) Sizing {
	return Sizing{
		RunID:        uuid.NewString(),
		Model:        model,
		Required:     required,
		Searched:     searched,
		UncoveredMWh: uncoveredMWh,
		Stats:        stats,
	}
}
