package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesNet(t *testing.T) {
	s := New([]float64{10, 0, 10}, []float64{5, 5, 5})
	require.Equal(t, 3, s.Len())
	assert.Equal(t, 5.0, s.Net(0))
	assert.Equal(t, -5.0, s.Net(1))
}

func TestSeriesValidate(t *testing.T) {
	ok := New([]float64{1, 2}, []float64{3, 4})
	assert.NoError(t, ok.Validate())

	mismatch := Series{
		RenewableMW: []float64{1, 2, 3},
		Facility:    []FacilityRecord{{AvgDCPowerMW: 1}},
	}
	assert.Error(t, mismatch.Validate())

	negative := New([]float64{-1}, []float64{1})
	assert.Error(t, negative.Validate())

	negativeFacility := New([]float64{1}, []float64{-1})
	assert.Error(t, negativeFacility.Validate())
}

func TestSeriesEmpty(t *testing.T) {
	var s Series
	assert.Equal(t, 0, s.Len())
	assert.NoError(t, s.Validate())
}
