package count

import (
	"math/big"
	"sort"

	"github.com/opcount/pmc/pkg/cnf"
	"github.com/opcount/pmc/pkg/solver"
	"github.com/opcount/pmc/pkg/xorgen"
)

type hashCellResult struct {
	estimate *big.Int
	m        int
}

// hashCellCount implements §4.G's ApproxMC-style hash-cell counter. For
// each of opts.R independent repetitions, it searches m = 1..k for a
// level whose XOR-augmented CNF has an exact cell count <= pivot/2, then
// scales that count by 2^m; the reported estimate is the integer median
// across repetitions (the lower of the two middle values when R is even).
// If every level saturates for a repetition, that repetition falls back
// to the degenerate estimate 2^k (an explicit, documented resolution of
// an open question in DESIGN.md, since §4.G leaves the
// all-saturated case unspecified beyond "report Saturated or fall back").
func hashCellCount(base *cnf.CNF, projection []int, opts Options, dl *deadline) (hashCellResult, int, error) {
	k := len(projection)
	rootGen := xorgen.New(uint64(opts.Seed))
	estimates := make([]*big.Int, 0, opts.R)
	totalCalls := 0
	lastM := 0

	halfPivot := big.NewInt(int64(opts.Pivot / 2))

	for rep := 0; rep < opts.R; rep++ {
		repGen := rootGen.Split(rep)
		found := false
		var cellCount *big.Int
		var usedM int

		for m := 1; m <= k; m++ {
			if dl.expired() {
				return hashCellResult{}, totalCalls, errTimedOut
			}

			res, calls, err := runLevel(base, projection, m, opts, repGen, dl)
			totalCalls += calls
			if err != nil {
				return hashCellResult{}, totalCalls, err
			}
			if res.outcome == outcomeTimedOut {
				return hashCellResult{}, totalCalls, errTimedOut
			}
			if res.outcome == outcomeExact && res.count.Cmp(halfPivot) <= 0 {
				found = true
				cellCount = res.count
				usedM = m
				break
			}
		}

		if !found {
			estimates = append(estimates, new(big.Int).Lsh(big.NewInt(1), uint(k)))
			lastM = k
			continue
		}
		estimates = append(estimates, new(big.Int).Lsh(cellCount, uint(usedM)))
		lastM = usedM
	}

	return hashCellResult{estimate: medianBig(estimates), m: lastM}, totalCalls, nil
}

// runLevel attempts one m-level hash-cell trial, retrying with fresh
// randomness up to opts.Trials times if an attempt's result is
// inconclusive because the deadline fired mid-attempt (§4.G: "trials
// limits the inner search-for-m retries ... if a trial's result is
// inconclusive").
func runLevel(base *cnf.CNF, projection []int, m int, opts Options, repGen *xorgen.Gen, dl *deadline) (exactResult, int, error) {
	var res exactResult
	calls := 0
	for attempt := 0; attempt < opts.Trials; attempt++ {
		trialGen := repGen.Split(m*opts.Trials + attempt)
		augmented := augmentWithParities(base, projection, m, opts.P, trialGen)

		s, err := solver.New(opts.Backend, augmented.NumVars, augmented.Clauses)
		if err != nil {
			return exactResult{}, calls, err
		}

		var solveErr error
		res, solveErr = exactCount(s, projection, opts.Pivot, dl)
		calls += res.solveCalls
		if solveErr != nil {
			return exactResult{}, calls, solveErr
		}
		if res.outcome != outcomeTimedOut {
			break
		}
	}
	return res, calls, nil
}

func medianBig(vals []*big.Int) *big.Int {
	if len(vals) == 0 {
		return big.NewInt(0)
	}
	sorted := append([]*big.Int(nil), vals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return sorted[n/2-1]
}

// augmentWithParities builds a fresh CNF consisting of base's clauses plus
// m independently-drawn XOR parity constraints over projection (§4.G).
func augmentWithParities(base *cnf.CNF, projection []int, m int, p float64, gen *xorgen.Gen) *cnf.CNF {
	clauses := make([][]int32, len(base.Clauses))
	for i, c := range base.Clauses {
		clauses[i] = append([]int32(nil), c...)
	}
	nextVar := int32(base.NumVars + 1)
	for i := 0; i < m; i++ {
		par := xorgen.RandomParity(gen.Split(i), projection, p)
		clauses = append(clauses, xorgen.EncodeParity(par, &nextVar)...)
	}
	return &cnf.CNF{NumVars: int(nextVar - 1), Clauses: clauses}
}
