package count

import (
	"errors"
	"fmt"
)

// InvalidOutputIndex is returned when out_index falls outside the
// declared range of a circuit's outputs (§7).
type InvalidOutputIndex struct {
	Index      int
	NumOutputs int
}

func (e *InvalidOutputIndex) Error() string {
	return fmt.Sprintf("output index %d out of range [0,%d)", e.Index, e.NumOutputs)
}

// SolverError reports a backend-internal failure (§4.E, §7): a solve call
// returned an inconclusive result outside of a deadline. A backend that
// cannot be constructed is reported as a wrapped *solver.Error instead.
type SolverError struct {
	Kind string
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver error: %s", e.Kind)
}

// errTimedOut is an internal sentinel distinguishing a deadline expiry
// from a genuine solver failure inside the hash-cell counter. TimedOut is
// not part of the public error taxonomy (§7): Count reports it as
// Status=timeout alongside partial statistics, never as a returned error.
var errTimedOut = errors.New("deadline exceeded")
