package solver

// dpllSolver is a from-scratch reference DPLL engine — unit propagation,
// then chronological branching on the first unassigned variable — used to
// cross-check the CDCL-backed backend in tests (§8 scenario S6) and as a
// dependency-free baseline. It favors clarity over performance: each
// branch works on its own copy of the assignment, so there is no undo
// bookkeeping to get wrong.
type dpllSolver struct {
	numVars int
	base    [][]int32
	clauses [][]int32
}

func newDPLL(numVars int, base [][]int32) *dpllSolver {
	b := cloneClauses(base)
	return &dpllSolver{
		numVars: numVars,
		base:    b,
		clauses: cloneClauses(b),
	}
}

func cloneClauses(cs [][]int32) [][]int32 {
	out := make([][]int32, len(cs))
	for i, c := range cs {
		out[i] = append([]int32(nil), c...)
	}
	return out
}

func (s *dpllSolver) AddClause(lits []int32) {
	s.clauses = append(s.clauses, append([]int32(nil), lits...))
}

func (s *dpllSolver) Fresh() Solver {
	return newDPLL(s.numVars, s.base)
}

func (s *dpllSolver) Solve() (Result, Model) {
	assign := make([]int8, s.numVars+1)
	final, ok := dpllSearch(s.numVars, s.clauses, assign)
	if !ok {
		return Unsat, nil
	}
	return Sat, dpllModel{final}
}

type clauseState int

const (
	clauseSatisfied clauseState = iota
	clauseUnit
	clauseConflict
	clauseUndetermined
)

// evalClause classifies a clause under a partial assignment and, for a
// unit clause, returns the forcing literal.
func evalClause(c []int32, assign []int8) (clauseState, int32) {
	unassigned := 0
	var unit int32
	for _, lit := range c {
		v := lit
		if v < 0 {
			v = -v
		}
		val := assign[v]
		if val == 0 {
			unassigned++
			unit = lit
			continue
		}
		if (val == 1 && lit > 0) || (val == -1 && lit < 0) {
			return clauseSatisfied, 0
		}
	}
	switch unassigned {
	case 0:
		return clauseConflict, 0
	case 1:
		return clauseUnit, unit
	default:
		return clauseUndetermined, 0
	}
}

// unitPropagate returns a new, extended assignment, or nil on conflict.
func unitPropagate(clauses [][]int32, assign []int8) []int8 {
	cur := append([]int8(nil), assign...)
	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			state, unit := evalClause(c, cur)
			switch state {
			case clauseConflict:
				return nil
			case clauseUnit:
				v := unit
				if v < 0 {
					v = -v
				}
				if unit > 0 {
					cur[v] = 1
				} else {
					cur[v] = -1
				}
				changed = true
			}
		}
	}
	return cur
}

func allSatisfied(clauses [][]int32, assign []int8) bool {
	for _, c := range clauses {
		if state, _ := evalClause(c, assign); state != clauseSatisfied {
			return false
		}
	}
	return true
}

func firstUnassigned(numVars int, assign []int8) int {
	for v := 1; v <= numVars; v++ {
		if assign[v] == 0 {
			return v
		}
	}
	return 0
}

func dpllSearch(numVars int, clauses [][]int32, assign []int8) ([]int8, bool) {
	cur := unitPropagate(clauses, assign)
	if cur == nil {
		return nil, false
	}
	if allSatisfied(clauses, cur) {
		return cur, true
	}
	v := firstUnassigned(numVars, cur)
	if v == 0 {
		return nil, false
	}
	for _, val := range [2]int8{1, -1} {
		next := append([]int8(nil), cur...)
		next[v] = val
		if res, ok := dpllSearch(numVars, clauses, next); ok {
			return res, true
		}
	}
	return nil, false
}

type dpllModel struct {
	assign []int8
}

func (m dpllModel) Value(v int32) bool {
	if int(v) >= len(m.assign) {
		return false
	}
	return m.assign[v] == 1
}
