package aig

import (
	"fmt"

	"github.com/opcount/pmc/pkg/gate"
)

// BuildResult carries the per-name and per-output literal tables produced
// while lowering a parsed gate.Circuit to an AIG (§4.B).
type BuildResult struct {
	AIG     *AIG
	Inputs  map[string]Lit // name -> AIG input literal, one per c.Inputs entry
	Outputs []Lit           // aligned index-for-index with c.Outputs
}

type cycleState uint8

const (
	stateUnvisited cycleState = iota
	stateVisiting
	stateDone
)

// Build lowers a parsed Circuit to a canonical two-input-AND AIG (§4.B).
// Multi-input gates decompose left-to-right into the two-input And/Or/Xor
// primitives; NOT and BUF never allocate a node, since they only flip or
// pass through a literal's inversion flag.
func Build(c *gate.Circuit) (*BuildResult, error) {
	g := New()

	isInput := make(map[string]bool, len(c.Inputs))
	for _, in := range c.Inputs {
		if isInput[in] {
			return nil, &gate.ParseError{Reason: fmt.Sprintf("duplicate input declaration %q", in)}
		}
		isInput[in] = true
	}

	gatesByOutput := make(map[string]*gate.Gate, len(c.Gates))
	for i := range c.Gates {
		gt := &c.Gates[i]
		if isInput[gt.Output] {
			return nil, &gate.ParseError{Reason: fmt.Sprintf("gate output %q shadows a primary input", gt.Output)}
		}
		if _, dup := gatesByOutput[gt.Output]; dup {
			return nil, &gate.ParseError{Reason: fmt.Sprintf("duplicate gate output %q", gt.Output)}
		}
		gatesByOutput[gt.Output] = gt
	}

	byName := make(map[string]Lit, len(c.Inputs)+len(c.Gates))
	inputs := make(map[string]Lit, len(c.Inputs))

	// Primary inputs are allocated first, in declaration order, so the
	// AIG's own input table matches the circuit's declared input order
	// regardless of the order gates happen to reference them in.
	for _, in := range c.Inputs {
		l := g.Input()
		byName[in] = l
		inputs[in] = l
	}

	state := make(map[string]cycleState, len(c.Gates))

	var resolve func(name string) (Lit, error)
	resolve = func(name string) (Lit, error) {
		if name == "$const" {
			return False, nil
		}
		if l, ok := byName[name]; ok {
			return l, nil
		}
		gt, ok := gatesByOutput[name]
		if !ok {
			return 0, &gate.ParseError{Reason: fmt.Sprintf("reference to undefined signal %q", name)}
		}
		if state[name] == stateVisiting {
			return 0, &gate.ParseError{Reason: fmt.Sprintf("combinational cycle through %q", name)}
		}
		state[name] = stateVisiting
		l, err := buildGate(g, resolve, gt)
		if err != nil {
			return 0, err
		}
		state[name] = stateDone
		byName[name] = l
		return l, nil
	}

	for i := range c.Gates {
		if _, err := resolve(c.Gates[i].Output); err != nil {
			return nil, err
		}
	}

	outputs := make([]Lit, len(c.Outputs))
	for i, out := range c.Outputs {
		l, err := resolve(out.Name)
		if err != nil {
			return nil, err
		}
		if out.Negated {
			l = l.Not()
		}
		outputs[i] = l
	}

	return &BuildResult{AIG: g, Inputs: inputs, Outputs: outputs}, nil
}

func operandLit(resolve func(string) (Lit, error), op gate.Operand) (Lit, error) {
	l, err := resolve(op.Name)
	if err != nil {
		return 0, err
	}
	if op.Negated {
		l = l.Not()
	}
	return l, nil
}

// buildGate lowers one multi-input gate assignment to its And/Or/Xor
// decomposition, left-to-right (§4.B).
func buildGate(g *AIG, resolve func(string) (Lit, error), gt *gate.Gate) (Lit, error) {
	lits := make([]Lit, len(gt.Operands))
	for i, op := range gt.Operands {
		l, err := operandLit(resolve, op)
		if err != nil {
			return 0, err
		}
		lits[i] = l
	}

	switch gt.Kind {
	case gate.KindNot:
		return lits[0].Not(), nil
	case gate.KindBuf:
		return lits[0], nil
	case gate.KindAnd:
		return foldLeft(lits, g.And), nil
	case gate.KindNand:
		return foldLeft(lits, g.And).Not(), nil
	case gate.KindOr:
		return foldLeft(lits, g.Or), nil
	case gate.KindNor:
		return foldLeft(lits, g.Or).Not(), nil
	case gate.KindXor:
		return foldLeft(lits, g.Xor), nil
	case gate.KindXnor:
		return foldLeft(lits, g.Xor).Not(), nil
	default:
		return 0, &gate.ParseError{Reason: fmt.Sprintf("unsupported gate kind %v", gt.Kind)}
	}
}

func foldLeft(lits []Lit, op func(a, b Lit) Lit) Lit {
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = op(acc, l)
	}
	return acc
}
