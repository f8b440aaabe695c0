package aig

// Simplify performs the one-pass constant-propagation simplification of
// §4.C: rebuild the cone through the same folding AND/OR/XOR builder used
// at construction time. Because And() re-applies every folding rule on
// each rebuilt node, any constant that surfaces partway through the cone
// (e.g. an AND whose translated children happen to cancel) propagates
// automatically through the rest of the rebuild — including, in the
// degenerate case, all the way out to a constant output literal.
func Simplify(g *AIG, output Lit, coneNodes []uint32) (*AIG, Lit) {
	newG := New()
	memo := make(map[uint32]Lit, len(coneNodes)+1)
	memo[0] = False

	translate := func(l Lit) Lit {
		base := memo[l.Node()]
		if l.Inverted() {
			return base.Not()
		}
		return base
	}

	for _, idx := range coneNodes {
		switch {
		case g.IsInput(idx):
			memo[idx] = newG.Input()
		case g.IsAnd(idx):
			a, b := g.AndOperands(idx)
			memo[idx] = newG.And(translate(a), translate(b))
		}
	}

	return newG, translate(output)
}
