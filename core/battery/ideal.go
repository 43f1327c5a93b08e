package battery

// Ideal is a lossless storage unit: transfers are 100% efficient and
// unlimited in rate, bounded only by capacity saturation. The stored load
// always stays within [0, Cap].
type Ideal struct {
	Cap    float64 // max storable energy in MWh
	Stored float64 // current load in MWh
}

// NewIdeal returns a lossless battery with the given capacity and initial load.
func NewIdeal(capacity, load float64) *Ideal {
	return &Ideal{Cap: capacity, Stored: load}
}

// Charge adds mwh to the stored load, clamping at capacity, and returns the
// resulting load. Energy that does not fit is spilled without signal.
func (b *Ideal) Charge(mwh float64) float64 {
	b.Stored += mwh
	if b.Stored > b.Cap {
		b.Stored = b.Cap
	}
	return b.Stored
}

// Discharge draws mwh from the stored load and returns the energy actually
// delivered: mwh itself when the load covers it, whatever was left otherwise.
func (b *Ideal) Discharge(mwh float64) float64 {
	b.Stored -= mwh
	if b.Stored < 0 {
		lacking := b.Stored
		b.Stored = 0
		return mwh + lacking
	}
	return mwh
}

func (b *Ideal) IsFull() bool      { return b.Cap == b.Stored }
func (b *Ideal) Capacity() float64 { return b.Cap }
func (b *Ideal) Load() float64     { return b.Stored }

// GrowFor expands the capacity by exactly mwh, making just enough room to
// serve a future one-step discharge of that amount. The stored load is
// untouched.
func (b *Ideal) GrowFor(mwh float64) {
	b.Cap += mwh
}
