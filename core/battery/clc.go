package battery

import (
	"fmt"
	"math"
)

// DefaultGrowStep is the capacity increment of GrowFor's refinement loop.
const DefaultGrowStep = 0.1

// CLCParams holds the efficiency and rate-limit coefficients of the lossy
// model. The formulation follows the C/L/C model in "Tractable lithium-ion
// storage models for optimizing energy systems", Energy Informatics 2.1
// (2019).
type CLCParams struct {
	// Charging and discharging efficiency, including DC-AC inverter loss.
	// EffD above 1 models that more energy is drawn from storage than is
	// delivered to the load.
	EffC float64 `json:"eff_c"`
	EffD float64 `json:"eff_d"`

	// Maximum charged energy in one step is limited by
	// UpperU*power + UpperV*capacity.
	UpperU float64 `json:"upper_u"`
	UpperV float64 `json:"upper_v"`

	// Maximum discharged energy in one step is limited by
	// LowerU*power + LowerV*capacity.
	LowerU float64 `json:"lower_u"`
	LowerV float64 `json:"lower_v"`

	// GrowStep is the capacity increment used by GrowFor. Zero selects
	// DefaultGrowStep.
	GrowStep float64 `json:"grow_step"`
}

// NMCParams returns the defaults for a lithium NMC cell.
func NMCParams() CLCParams {
	return CLCParams{
		EffC:     0.98,
		EffD:     1.05,
		UpperU:   -0.125,
		UpperV:   1,
		LowerU:   0.05,
		LowerV:   0,
		GrowStep: DefaultGrowStep,
	}
}

// Validate rejects coefficient sets that would divide by zero in the rate
// limits or stall the refinement loop.
func (p CLCParams) Validate() error {
	if p.EffC <= 0 {
		return fmt.Errorf("charge efficiency must be positive, got %v", p.EffC)
	}
	if p.EffD <= 0 {
		return fmt.Errorf("discharge efficiency must be positive, got %v", p.EffD)
	}
	if p.EffC-p.UpperU == 0 {
		return fmt.Errorf("eff_c - upper_u must be nonzero")
	}
	if p.LowerU+p.EffD == 0 {
		return fmt.Errorf("lower_u + eff_d must be nonzero")
	}
	if p.GrowStep < 0 {
		return fmt.Errorf("grow step must not be negative, got %v", p.GrowStep)
	}
	return nil
}

// CLC is the lossy, rate-limited storage unit. Unlike Ideal the stored load
// is not hard-clamped: the rate limits keep it inside [0, Cap] analytically.
type CLC struct {
	CLCParams
	Cap    float64 // max storable energy in MWh
	Stored float64 // current load in MWh
}

// NewCLC returns a lossy battery after validating the coefficients.
func NewCLC(capacity, load float64, params CLCParams) (*CLC, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("clc params: %w", err)
	}
	return &CLC{CLCParams: params, Cap: capacity, Stored: load}, nil
}

// MaxCharge returns the most energy the battery can accept this step,
// bounded by the remaining physical capacity and by the affine charge rate
// limit. It depends on the current load and must be recomputed per step.
func (b *CLC) MaxCharge() float64 {
	return math.Min(b.Cap/b.EffC, (b.UpperV*b.Cap-b.Stored)/(b.EffC-b.UpperU))
}

// MaxDischarge returns the most energy the battery can give up this step,
// bounded like MaxCharge.
func (b *CLC) MaxDischarge() float64 {
	return math.Min(b.Cap/b.EffD, (b.Stored-b.LowerV*b.Cap)/(b.LowerU+b.EffD))
}

// Charge stores min(MaxCharge, mwh) scaled by the charge efficiency and
// returns the resulting load.
func (b *CLC) Charge(mwh float64) float64 {
	b.Stored += math.Min(b.MaxCharge(), mwh) * b.EffC
	return b.Stored
}

// Discharge draws min(MaxDischarge, mwh) scaled by the discharge efficiency
// from the stored load. It returns the bounded request, not the post-
// efficiency storage draw; callers treat it as delivered energy.
func (b *CLC) Discharge(mwh float64) float64 {
	max := b.MaxDischarge()
	b.Stored -= math.Min(max, mwh) * b.EffD
	if max < mwh {
		return max
	}
	return mwh
}

func (b *CLC) IsFull() bool      { return b.Cap == b.Stored }
func (b *CLC) Capacity() float64 { return b.Cap }
func (b *CLC) Load() float64     { return b.Stored }

// GrowFor expands the capacity until a one-step discharge of mwh fits the
// rate limit. The first increment covers the efficiency-scaled draw; the
// remainder is found by growing in GrowStep increments.
// TODO: derive the closed form and drop the loop.
func (b *CLC) GrowFor(mwh float64) {
	step := b.GrowStep
	if step <= 0 {
		step = DefaultGrowStep
	}

	b.Cap += mwh * b.EffD

	next := mwh * b.EffD
	for {
		lim := (next - b.LowerV*b.Cap) / (b.LowerU + b.EffD)
		if lim >= mwh {
			return
		}
		b.Cap += step
		next += step
	}
}
