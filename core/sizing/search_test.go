package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/timeseries"
)

func spikySeries() timeseries.Series {
	// net loads +5, -5, +5: minimal lossless capacity is 5
	return timeseries.New(
		[]float64{10, 0, 10},
		[]float64{5, 5, 5},
	)
}

func TestSearchIdealFindsMinimalCapacity(t *testing.T) {
	res := SearchIdeal(spikySeries(), 20, Options{})
	require.False(t, res.Infeasible)
	assert.InDelta(t, 5, res.MWh, DefaultTolerance)

	// monotonicity around the result, within the convergence width
	if !Feasible(spikySeries(), battery.NewIdeal(res.MWh+DefaultTolerance, res.MWh+DefaultTolerance)) {
		t.Fatalf("capacity just above the result must be feasible")
	}
	if Feasible(spikySeries(), battery.NewIdeal(res.MWh-0.2, res.MWh-0.2)) {
		t.Fatalf("capacity 0.2 below the result must be infeasible")
	}
}

func TestSearchReturnsZeroWhenNoBatteryNeeded(t *testing.T) {
	s := timeseries.New(
		[]float64{5, 5, 5},
		[]float64{2, 3, 5},
	)
	res := SearchIdeal(s, 10, Options{})
	require.False(t, res.Infeasible)
	assert.Zero(t, res.MWh)
}

func TestSearchExhaustedBoundIsInfeasible(t *testing.T) {
	s := timeseries.New(
		[]float64{0, 0, 0},
		[]float64{1, 1, 1},
	)
	res := SearchIdeal(s, 0.5, Options{})
	assert.True(t, res.Infeasible)
}

func TestSearchCLCAccountsForLosses(t *testing.T) {
	// the lossy discharge limit load/ (lowerU+effD) requires roughly
	// 5*1.1 = 5.5 MWh for the same series
	res, err := SearchCLC(spikySeries(), 20, battery.NMCParams(), Options{})
	require.NoError(t, err)
	require.False(t, res.Infeasible)
	assert.InDelta(t, 5.5, res.MWh, 0.15)
}

func TestSearchCLCRejectsBadParams(t *testing.T) {
	bad := battery.NMCParams()
	bad.UpperU = bad.EffC
	_, err := SearchCLC(spikySeries(), 20, bad, Options{})
	assert.Error(t, err)
}

func TestDefaultMaxSize(t *testing.T) {
	assert.InDelta(t, 10, DefaultMaxSize(spikySeries()), 1e-9)

	s := timeseries.New(
		[]float64{0, 4, 0},
		[]float64{2, 2, 2},
	)
	assert.InDelta(t, 8, DefaultMaxSize(s), 1e-9)

	// the derived bound always admits the lossless minimum
	res := SearchIdeal(spikySeries(), DefaultMaxSize(spikySeries()), Options{})
	require.False(t, res.Infeasible)
	assert.InDelta(t, 5, res.MWh, DefaultTolerance)
}

func TestCapacityMaxPropagatesInfeasible(t *testing.T) {
	a := Capacity{MWh: 3}
	b := Capacity{MWh: 7}
	assert.Equal(t, b, a.Max(b))
	assert.Equal(t, b, b.Max(a))

	inf := Infeasible()
	assert.True(t, a.Max(inf).Infeasible)
	assert.True(t, inf.Max(a).Infeasible)
	assert.Equal(t, "infeasible", inf.String())
	assert.Equal(t, "3 MWh", a.String())
}
