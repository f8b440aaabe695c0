package count

import (
	"math/big"

	"github.com/opcount/pmc/pkg/solver"
)

// exactOutcome distinguishes the three ways §4.F's enumeration loop ends.
type exactOutcome int

const (
	outcomeExact exactOutcome = iota
	outcomeSaturated
	outcomeTimedOut
)

type exactResult struct {
	outcome    exactOutcome
	count      *big.Int
	solveCalls int
}

// exactCount implements §4.F's blocking-clause enumeration: each solved
// iteration yields one distinct projected assignment, which is then
// permanently excluded before the next solve. The loop terminates exactly
// (Unsat reached), on pivot saturation, or on deadline expiry, and
// solve_calls counts every Solve() call including the terminating Unsat.
func exactCount(s solver.Solver, projection []int, pivot int, dl *deadline) (exactResult, error) {
	n := big.NewInt(0)
	calls := 0
	pivotBig := big.NewInt(int64(pivot))

	for {
		if dl.expired() {
			return exactResult{outcome: outcomeTimedOut, count: n, solveCalls: calls}, nil
		}

		res, model := s.Solve()
		calls++

		switch res {
		case solver.Unsat:
			return exactResult{outcome: outcomeExact, count: n, solveCalls: calls}, nil
		case solver.Unknown:
			return exactResult{}, &SolverError{Kind: "solve returned an inconclusive result"}
		}

		n = new(big.Int).Add(n, big.NewInt(1))
		if n.Cmp(pivotBig) > 0 {
			return exactResult{outcome: outcomeSaturated, count: n, solveCalls: calls}, nil
		}

		block := make([]int32, len(projection))
		for i, p := range projection {
			if model.Value(int32(p)) {
				block[i] = int32(-p)
			} else {
				block[i] = int32(p)
			}
		}
		s.AddClause(block)
	}
}
