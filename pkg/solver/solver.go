// Package solver implements the abstract SAT-solver capability of §4.E:
// add a clause, solve, and obtain a fresh solver carrying the same
// initial clause set. Two backends satisfy the same Solver interface,
// dispatched by an enum tag rather than by type assertion or inheritance.
package solver

import "fmt"

// Result is the outcome of one Solve call (§4.E).
type Result int

const (
	Unknown Result = iota
	Sat
	Unsat
)

// Model answers queries about a satisfying assignment. Callers that ask
// about a variable the solver left unassigned get false, per §4.E's
// "treat unknown as a default polarity."
type Model interface {
	Value(v int32) bool
}

// Solver is the abstract capability of §4.E.
type Solver interface {
	// AddClause permanently adds a clause (a disjunction of signed
	// literals) to the solver's working clause set.
	AddClause(lits []int32)
	// Solve runs the solver to completion over the current clause set.
	Solve() (Result, Model)
	// Fresh returns a new Solver over the same clause set this solver was
	// constructed with, discarding any clauses added since via AddClause.
	// The hash-cell counter does not call it: each of its trials builds a
	// new solver with New over that trial's augmented clause set (§4.G).
	Fresh() Solver
}

// Backend selects a concrete Solver implementation (§6's backend enum).
type Backend string

const (
	DPLL    Backend = "dpll"
	Varisat Backend = "varisat"
)

// Error reports an internal solver failure (§4.E, §7).
type Error struct {
	Kind string
}

func (e *Error) Error() string {
	return fmt.Sprintf("solver error: %s", e.Kind)
}

// New constructs a Solver of the given backend over numVars variables,
// pre-loaded with base.
func New(backend Backend, numVars int, base [][]int32) (Solver, error) {
	switch backend {
	case DPLL, "":
		return newDPLL(numVars, base), nil
	case Varisat:
		return newGini(numVars, base)
	default:
		return nil, &Error{Kind: fmt.Sprintf("unknown backend %q", backend)}
	}
}
