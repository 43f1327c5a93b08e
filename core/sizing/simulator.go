package sizing

import (
	"github.com/carbonshift/ren247/core/battery"
	"github.com/carbonshift/ren247/core/timeseries"
)

// Feasible steps b through the series and reports whether every deficit was
// fully served. Surplus steps charge the battery; a deficit step aborts the
// run as soon as the battery delivers less than the shortfall. The battery
// state is mutated in place and not rolled back on failure.
func Feasible(s timeseries.Series, b battery.Storage) bool {
	for i := 0; i < s.Len(); i++ {
		net := s.Net(i)
		if net > 0 {
			b.Charge(net)
			continue
		}
		if delivered := b.Discharge(-net); delivered < -net {
			return false
		}
	}
	return true
}
