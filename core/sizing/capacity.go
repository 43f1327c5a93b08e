// Package sizing contains the feasibility simulator and the capacity
// estimators built on top of the battery models.
package sizing

import "strconv"

// Capacity is the outcome of a sizing run: either a capacity in MWh or an
// explicit marker that no feasible capacity exists. The zero value is a
// feasible zero-MWh result.
type Capacity struct {
	MWh        float64 `json:"mwh"`
	Infeasible bool    `json:"infeasible"`
}

// Infeasible returns the sentinel for series no battery size can cover.
func Infeasible() Capacity { return Capacity{Infeasible: true} }

// Max returns the larger of c and other. Infeasibility on either side
// poisons the result.
func (c Capacity) Max(other Capacity) Capacity {
	if c.Infeasible || other.Infeasible {
		return Infeasible()
	}
	if other.MWh > c.MWh {
		return other
	}
	return c
}

func (c Capacity) String() string {
	if c.Infeasible {
		return "infeasible"
	}
	return strconv.FormatFloat(c.MWh, 'f', -1, 64) + " MWh"
}
