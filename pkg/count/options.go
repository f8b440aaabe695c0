package count

import (
	"github.com/opcount/pmc/pkg/gate"
	"github.com/opcount/pmc/pkg/solver"
)

// Options configures a counting query (§6).
type Options struct {
	// Seed is the PRNG seed for the hash-cell counter's parity draws.
	Seed int64
	// Pivot is the exact-enumeration cap (§4.F): enumeration saturates once
	// the running count exceeds Pivot. Must be positive; a non-positive
	// value is replaced by defaultPivot.
	Pivot int
	// Trials bounds the inner retries of a single hash-cell (m) attempt
	// when a trial's result is inconclusive (deadline expiry mid-attempt),
	// per §4.G.
	Trials int
	// P is the XOR-constraint inclusion density in (0, 1], per §4.G.
	P float64
	// R is the number of independent hash-cell repetitions (§4.G); the
	// reported estimate is their integer median.
	R int
	// Backend selects the SAT-solver implementation (§4.E, §6).
	Backend solver.Backend
	// Format selects the circuit front-end, or FormatAuto to infer it from
	// the file extension (§4.A, §6).
	Format gate.Format
	// TimeoutMS is the wall-clock deadline in milliseconds; 0 means no
	// deadline (§5).
	TimeoutMS int
}

// defaultPivot is used when Options.Pivot is not a positive integer.
const defaultPivot = 1 << 16

func (o Options) withDefaults() Options {
	if o.Pivot <= 0 {
		o.Pivot = defaultPivot
	}
	if o.Trials <= 0 {
		o.Trials = 1
	}
	if o.P <= 0 || o.P > 1 {
		o.P = 0.5
	}
	if o.R <= 0 {
		o.R = 1
	}
	if o.Backend == "" {
		o.Backend = solver.Varisat
	}
	if o.Format == "" {
		o.Format = gate.FormatAuto
	}
	return o
}
