package sizing

import (
	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/timeseries"
)

// RequiredCapacity is the primary sizing entry point: a single forward pass
// that grows a lossless battery on demand instead of searching. It returns
// the largest capacity the walk ever needed, or infeasible when any
// Window-sized stretch of the series has a net energy deficit (renewable
// generation could never refill the battery).
func RequiredCapacity(s timeseries.Series, opts Options) Capacity {
	opts = opts.withDefaults()

	result := Capacity{}
	b := battery.NewIdeal(0, 0)
	windowNet := 0.0

	for i := 0; i < s.Len(); i++ {
		ren := s.RenewableMW[i]
		draw := s.Facility[i].AvgDCPowerMW
		windowNet += ren - draw

		if draw > ren {
			deficit := draw - ren
			switch {
			case b.Cap == 0:
				// never had capacity, bootstrap enough for this step
				b.GrowFor(deficit)
			case b.Stored == 0:
				// had capacity but starts the step depleted
				b.GrowFor(deficit)
			default:
				before := b.Stored
				b.Discharge(deficit)
				if b.Stored == 0 {
					// drained mid-step, grow by the unmet remainder
					b.GrowFor(deficit - before)
				}
			}
		} else {
			if b.Cap > 0 {
				b.Charge(ren - draw)
			} else if b.IsFull() {
				b = battery.NewIdeal(0, 0)
			}
		}

		if b.Cap > 0 {
			result = result.Max(Capacity{MWh: b.Cap})
		}

		if (i+1)%opts.Window == 0 {
			if windowNet < 0 {
				return Infeasible()
			}
			windowNet = 0
		}
	}

	return result
}
