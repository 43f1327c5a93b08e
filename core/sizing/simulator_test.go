package sizing

import (
	"testing"

	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/timeseries"
)

func TestFeasibleWithAmpleCapacity(t *testing.T) {
	s := timeseries.New(
		[]float64{0, 0, 10, 0},
		[]float64{2, 2, 2, 2},
	)
	// capacity above the total deficit, starting full
	b := battery.NewIdeal(100, 100)
	if !Feasible(s, b) {
		t.Fatalf("ample battery must make the series feasible")
	}
}

func TestFeasibleFailsWithZeroCapacity(t *testing.T) {
	s := timeseries.New(
		[]float64{5, 0},
		[]float64{2, 2},
	)
	if Feasible(s, battery.NewIdeal(0, 0)) {
		t.Fatalf("zero-capacity battery cannot cover a deficit step")
	}
}

func TestFeasibleExactCoverage(t *testing.T) {
	// net loads +5, -5, +5: a 5 MWh lossless battery starting full works
	s := timeseries.New(
		[]float64{10, 0, 10},
		[]float64{5, 5, 5},
	)
	if !Feasible(s, battery.NewIdeal(5, 5)) {
		t.Fatalf("5 MWh battery should cover the series")
	}
	if Feasible(s, battery.NewIdeal(4.8, 4.8)) {
		t.Fatalf("4.8 MWh battery should fall short")
	}
}

func TestFeasibleZeroNetLoadStep(t *testing.T) {
	// a zero net-load step discharges zero and must not fail
	s := timeseries.New(
		[]float64{3, 3},
		[]float64{3, 3},
	)
	if !Feasible(s, battery.NewIdeal(0, 0)) {
		t.Fatalf("balanced series needs no battery")
	}
}

func TestFeasibleDrivesCLCStorage(t *testing.T) {
	s := timeseries.New(
		[]float64{10, 0, 10},
		[]float64{5, 5, 5},
	)
	b, err := battery.NewCLC(10, 10, battery.NMCParams())
	if err != nil {
		t.Fatalf("new clc: %v", err)
	}
	if !Feasible(s, b) {
		t.Fatalf("10 MWh lossy battery should cover a 5 MWh deficit")
	}
}
