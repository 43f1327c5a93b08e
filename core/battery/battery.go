// Package battery implements the storage models driven by the sizing
// simulations: an idealized lossless unit and a lossy unit with linear
// charge/discharge rate limits. All energy amounts are MWh per
// simulation step.
package battery

// Storage is the capability set shared by both battery models. The
// simulators only ever talk to a battery through this interface.
type Storage interface {
	// Charge stores up to mwh of energy and returns the resulting load.
	Charge(mwh float64) float64
	// Discharge draws up to mwh of energy and returns the amount delivered.
	Discharge(mwh float64) float64
	// IsFull reports whether the stored load equals the capacity exactly.
	// Only meaningful after exact-arithmetic paths.
	IsFull() bool
	Capacity() float64
	Load() float64
}
