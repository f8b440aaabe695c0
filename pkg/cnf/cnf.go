// Package cnf implements the Tseitin transformation of §4.D: lowering a
// simplified, single-output AIG to a flat CNF clause set plus the ordered
// set of projection variables.
package cnf

import (
	"fmt"
	"strings"

	"github.com/opcount/pmc/pkg/aig"
)

// Lit is a signed DIMACS-style CNF literal: positive names a variable,
// negative its negation (§3).
type Lit = int32

// CNF is the flat clause-set representation produced by the Tseitin
// encoder. It carries no solver attachment — pkg/solver reads the Clauses
// slice directly.
type CNF struct {
	NumVars int
	Clauses [][]Lit
}

// String renders the CNF in DIMACS form, for debugging.
func (c *CNF) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", c.NumVars, len(c.Clauses))
	for _, cl := range c.Clauses {
		for _, l := range cl {
			fmt.Fprintf(&b, "%d ", l)
		}
		b.WriteString("0\n")
	}
	return b.String()
}

// Result is the output of Encode: the CNF plus the ordered projection set.
type Result struct {
	CNF *CNF
	// Projection holds the CNF variables bound to cone inputs, in the
	// order they appear in the AIG's primary-input table (§4.D).
	Projection []int
}

// Encode applies the Tseitin transformation of §4.D to an already
// cone-restricted, constant-propagated AIG (pkg/aig.Simplify's output).
// Cone inputs are numbered 1..k in primary-input-table order; each
// retained AND gate is numbered k+rank in topological order. Three
// standard Tseitin clauses are emitted per AND gate, plus one unit clause
// forcing the output literal true. output must not be constant: callers
// are expected to have already handled §4.C's constant-output shortcut
// before calling Encode.
func Encode(g *aig.AIG, output aig.Lit) *Result {
	k := g.NumInputs()
	varOf := make([]int32, g.NumNodes())
	for i, idx := range g.Inputs() {
		varOf[idx] = int32(i + 1)
	}

	nextVar := int32(k + 1)
	var clauses [][]Lit
	for idx := uint32(1); int(idx) < g.NumNodes(); idx++ {
		if !g.IsAnd(idx) {
			continue
		}
		v := nextVar
		nextVar++
		varOf[idx] = v

		a, b := g.AndOperands(idx)
		la, lb := litFor(varOf, a), litFor(varOf, b)
		clauses = append(clauses,
			[]Lit{-v, la},
			[]Lit{-v, lb},
			[]Lit{v, -la, -lb},
		)
	}

	outLit := litFor(varOf, output)
	clauses = append(clauses, []Lit{outLit})

	projection := make([]int, k)
	for i := range projection {
		projection[i] = i + 1
	}

	return &Result{
		CNF:        &CNF{NumVars: int(nextVar - 1), Clauses: clauses},
		Projection: projection,
	}
}

func litFor(varOf []int32, l aig.Lit) Lit {
	v := varOf[l.Node()]
	if l.Inverted() {
		return -v
	}
	return v
}
