// Package xorgen implements §4.G's support machinery for the hash-cell
// counter: a splittable, seeded pseudo-random generator and the random
// parity-constraint construction (plus its Tseitin-style CNF expansion)
// built on top of it.
package xorgen

// Gen is a splittable counter-mode pseudo-random generator (SplitMix64):
// given the same seed, the sequence it produces is bit-identical across
// runs, and Split derives independent, reproducible sub-streams so
// parallel repetitions of the hash-cell trials stay reproducible with
// sequential ones (§5(a): "counting is deterministic given the same seed").
type Gen struct {
	state uint64
}

// New seeds a new generator.
func New(seed uint64) *Gen {
	return &Gen{state: seed}
}

const (
	goldenGamma = 0x9E3779B97F4A7C15
	mix1        = 0xBF58476D1CE4E5B9
	mix2        = 0x94D049BB133111EB
	splitConst  = 0xD6E8FEB86659FD93
)

// Uint64 returns the next pseudo-random value and advances the generator.
func (g *Gen) Uint64() uint64 {
	g.state += goldenGamma
	z := g.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2
	return z ^ (z >> 31)
}

// Float64 returns a pseudo-random value in [0, 1).
func (g *Gen) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// Bool returns true with probability p.
func (g *Gen) Bool(p float64) bool {
	return g.Float64() < p
}

// Split derives an independent, reproducible sub-stream identified by i:
// calling Split(i) twice on generators with the same state yields
// identical sub-streams, and distinct i values yield uncorrelated ones.
func (g *Gen) Split(i int) *Gen {
	sub := &Gen{state: g.state ^ (uint64(i)*goldenGamma + splitConst)}
	sub.Uint64() // mix once so adjacent low-entropy indices decorrelate
	return sub
}
