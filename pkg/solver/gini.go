package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSolver backs the "varisat" backend tag with a real CDCL engine: no Go
// port of the varisat crate exists anywhere in the example pack or the
// wider ecosystem, so this module substitutes github.com/go-air/gini,
// reached through the same Add/Solve/Value calls the teacher's resolver
// uses against it.
type giniSolver struct {
	numVars int
	base    [][]int32
	g       *gini.Gini
}

func newGini(numVars int, base [][]int32) (Solver, error) {
	s := &giniSolver{
		numVars: numVars,
		base:    cloneClauses(base),
		g:       gini.New(),
	}
	for _, c := range s.base {
		s.addClauseToGini(c)
	}
	return s, nil
}

func (s *giniSolver) addClauseToGini(lits []int32) {
	for _, l := range lits {
		s.g.Add(z.Dimacs2Lit(int(l)))
	}
	s.g.Add(z.LitNull)
}

func (s *giniSolver) AddClause(lits []int32) {
	s.addClauseToGini(lits)
}

func (s *giniSolver) Fresh() Solver {
	fresh, _ := newGini(s.numVars, s.base)
	return fresh
}

func (s *giniSolver) Solve() (Result, Model) {
	switch s.g.Solve() {
	case 1:
		return Sat, giniModel{s.g}
	case -1:
		return Unsat, nil
	default:
		return Unknown, nil
	}
}

type giniModel struct {
	g *gini.Gini
}

func (m giniModel) Value(v int32) bool {
	return m.g.Value(z.Dimacs2Lit(int(v)))
}
