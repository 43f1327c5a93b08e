package sizing

import (
	"gonum.org/v1/gonum/floats"

	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/timeseries"
)

const (
	// DefaultTolerance is the binary-search convergence width in MWh.
	DefaultTolerance = 0.1
	// DefaultWindow is the rolling net-load window of the incremental
	// finder: three days at hourly resolution.
	DefaultWindow = 72
)

// Options tunes the capacity estimators.
type Options struct {
	// Tolerance is the binary-search convergence width in MWh.
	Tolerance float64
	// Window is the number of steps over which the net load must sum
	// non-negative for a battery to be refillable at all.
	Window int
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	return o
}

// Search binary-searches [0, maxSize] for the smallest capacity at which
// newStorage passes the feasibility simulation. Every probe is a fresh
// battery starting fully charged at the candidate capacity. The result is
// the midpoint of the final interval; an upper bound still stuck at maxSize
// means no capacity within the bound works and the result is infeasible.
func Search(s timeseries.Series, maxSize float64, opts Options, newStorage func(capacity float64) battery.Storage) Capacity {
	opts = opts.withDefaults()

	// no battery at all may already be enough
	if Feasible(s, newStorage(0)) {
		return Capacity{}
	}

	lower, upper := 0.0, maxSize
	var mid float64
	for upper-lower > opts.Tolerance {
		mid = (upper + lower) / 2
		if Feasible(s, newStorage(mid)) {
			upper = mid
		} else {
			lower = mid
		}
	}

	if upper == maxSize {
		return Infeasible()
	}
	return Capacity{MWh: mid}
}

// SearchIdeal sizes the lossless model.
func SearchIdeal(s timeseries.Series, maxSize float64, opts Options) Capacity {
	return Search(s, maxSize, opts, func(capacity float64) battery.Storage {
		return battery.NewIdeal(capacity, capacity)
	})
}

// SearchCLC sizes the lossy model. The coefficient set is validated once up
// front; probes share it.
func SearchCLC(s timeseries.Series, maxSize float64, params battery.CLCParams, opts Options) (Capacity, error) {
	if err := params.Validate(); err != nil {
		return Capacity{}, err
	}
	return Search(s, maxSize, opts, func(capacity float64) battery.Storage {
		return &battery.CLC{CLCParams: params, Cap: capacity, Stored: capacity}
	}), nil
}

// DefaultMaxSize returns a search upper bound: twice the total deficit
// energy over the series. A lossless battery holding the total deficit
// covers the series, and doubling keeps that minimum strictly inside the
// bound so the search can converge below it.
func DefaultMaxSize(s timeseries.Series) float64 {
	deficits := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if net := s.Net(i); net < 0 {
			deficits = append(deficits, -net)
		}
	}
	return 2 * floats.Sum(deficits)
}
