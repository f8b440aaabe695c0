package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcount/pmc/pkg/solver"
)

func backends() []solver.Backend {
	return []solver.Backend{solver.DPLL, solver.Varisat}
}

func TestSolveSimpleSat(t *testing.T) {
	for _, backend := range backends() {
		backend := backend
		t.Run(string(backend), func(t *testing.T) {
			s, err := solver.New(backend, 2, [][]int32{{1, 2}, {-1, -2}})
			require.NoError(t, err)
			res, model := s.Solve()
			require.Equal(t, solver.Sat, res)
			// exactly one of 1, 2 holds given {1 or 2} and {not 1 or not 2}
			assert.NotEqual(t, model.Value(1), model.Value(2))
		})
	}
}

func TestSolveUnsat(t *testing.T) {
	for _, backend := range backends() {
		backend := backend
		t.Run(string(backend), func(t *testing.T) {
			s, err := solver.New(backend, 1, [][]int32{{1}, {-1}})
			require.NoError(t, err)
			res, _ := s.Solve()
			assert.Equal(t, solver.Unsat, res)
		})
	}
}

func TestAddClauseNarrowsModels(t *testing.T) {
	for _, backend := range backends() {
		backend := backend
		t.Run(string(backend), func(t *testing.T) {
			s, err := solver.New(backend, 2, nil)
			require.NoError(t, err)
			res, model := s.Solve()
			require.Equal(t, solver.Sat, res)

			// Block whatever assignment was just found for variable 1.
			if model.Value(1) {
				s.AddClause([]int32{-1})
			} else {
				s.AddClause([]int32{1})
			}
			res2, model2 := s.Solve()
			require.Equal(t, solver.Sat, res2)
			assert.NotEqual(t, model.Value(1), model2.Value(1))
		})
	}
}

func TestFreshDropsAddedClauses(t *testing.T) {
	for _, backend := range backends() {
		backend := backend
		t.Run(string(backend), func(t *testing.T) {
			s, err := solver.New(backend, 1, nil)
			require.NoError(t, err)
			s.AddClause([]int32{1})
			s.AddClause([]int32{-1})
			res, _ := s.Solve()
			require.Equal(t, solver.Unsat, res)

			fresh := s.Fresh()
			res2, _ := fresh.Solve()
			assert.Equal(t, solver.Sat, res2)
		})
	}
}

func TestBackendsAgree(t *testing.T) {
	clauses := [][]int32{
		{1, 2, 3},
		{-1, -2},
		{-2, -3},
		{-1, -3},
	}
	results := map[solver.Backend]int{}
	for _, backend := range backends() {
		s, err := solver.New(backend, 3, clauses)
		require.NoError(t, err)
		count := 0
		for {
			res, model := s.Solve()
			if res != solver.Sat {
				break
			}
			count++
			block := []int32{}
			for v := int32(1); v <= 3; v++ {
				if model.Value(v) {
					block = append(block, -v)
				} else {
					block = append(block, v)
				}
			}
			s.AddClause(block)
		}
		results[backend] = count
	}
	assert.Equal(t, results[solver.DPLL], results[solver.Varisat])
	assert.Equal(t, 3, results[solver.DPLL]) // exactly one of x1,x2,x3 true
}
