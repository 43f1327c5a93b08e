// Package timeseries holds the aligned input series the estimators walk:
// renewable generation on one side, facility power draw on the other.
package timeseries

import "fmt"

// FacilityRecord is one step of the facility power series. The estimators
// only consume the average DC power draw.
type FacilityRecord struct {
	AvgDCPowerMW float64 `json:"avg_dc_power_mw"`
}

// Series pairs the renewable generation series with the facility draw
// series. The two must be index-aligned at a fixed (hourly) resolution.
type Series struct {
	RenewableMW []float64
	Facility    []FacilityRecord
}

// New builds a Series from two plain value slices.
func New(renewableMW, facilityMW []float64) Series {
	fac := make([]FacilityRecord, len(facilityMW))
	for i, v := range facilityMW {
		fac[i] = FacilityRecord{AvgDCPowerMW: v}
	}
	return Series{RenewableMW: renewableMW, Facility: fac}
}

func (s Series) Len() int { return len(s.RenewableMW) }

// Net returns renewable generation minus facility draw at step i.
// Positive is surplus, negative is deficit.
func (s Series) Net(i int) float64 {
	return s.RenewableMW[i] - s.Facility[i].AvgDCPowerMW
}

// Validate checks alignment and that both series are non-negative power
// values.
func (s Series) Validate() error {
	if len(s.RenewableMW) != len(s.Facility) {
		return fmt.Errorf("series length mismatch: %d renewable vs %d facility steps",
			len(s.RenewableMW), len(s.Facility))
	}
	for i, v := range s.RenewableMW {
		if v < 0 {
			return fmt.Errorf("renewable power at step %d is negative: %v", i, v)
		}
		if s.Facility[i].AvgDCPowerMW < 0 {
			return fmt.Errorf("facility power at step %d is negative: %v", i, s.Facility[i].AvgDCPowerMW)
		}
	}
	return nil
}
