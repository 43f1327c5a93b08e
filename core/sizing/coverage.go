package sizing

import (
	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/timeseries"
)

// ApplyBattery simulates a lossy battery of the given capacity, starting
// fully charged, against the series and returns the total energy in MWh the
// battery could not cover, i.e. what still has to come from non-renewable
// sources.
func ApplyBattery(capacityMWh float64, s timeseries.Series, params battery.CLCParams) (float64, error) {
	b, err := battery.NewCLC(capacityMWh, capacityMWh, params)
	if err != nil {
		return 0, err
	}

	uncovered := 0.0
	for i := 0; i < s.Len(); i++ {
		gap := s.Facility[i].AvgDCPowerMW - s.RenewableMW[i]
		if gap > 0 {
			delivered := b.Discharge(gap)
			uncovered += gap - delivered
		} else {
			b.Charge(-gap)
		}
	}
	return uncovered, nil
}
