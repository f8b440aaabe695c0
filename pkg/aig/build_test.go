package aig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcount/pmc/pkg/aig"
	"github.com/opcount/pmc/pkg/gate"
)

func parseBench(t *testing.T, src string) *gate.Circuit {
	t.Helper()
	c, err := gate.ParseBench(strings.NewReader(src))
	require.NoError(t, err)
	return c
}

func TestBuildMultiInputOr(t *testing.T) {
	c := parseBench(t, strings.Join([]string{
		"INPUT(a)", "INPUT(b)", "INPUT(c)", "OUTPUT(o)",
		"o = OR(a, b, c)",
	}, "\n"))

	res, err := aig.Build(c)
	require.NoError(t, err)
	assert.Equal(t, 3, res.AIG.NumInputs())
	assert.Len(t, res.Outputs, 1)
	assert.NotEqual(t, aig.False, res.Outputs[0])
	assert.NotEqual(t, aig.True, res.Outputs[0])
}

func TestBuildNotNeverAllocatesNode(t *testing.T) {
	c := parseBench(t, strings.Join([]string{
		"INPUT(a)", "OUTPUT(o)", "n1 = NOT(a)", "o = BUF(n1)",
	}, "\n"))

	res, err := aig.Build(c)
	require.NoError(t, err)
	// BUF(NOT(a)) should just be a's inverted literal: no AND nodes needed.
	assert.Equal(t, 0, res.AIG.NumAnds())
	assert.Equal(t, res.Inputs["a"].Not(), res.Outputs[0])
}

func TestBuildForwardReference(t *testing.T) {
	c := parseBench(t, strings.Join([]string{
		"INPUT(a)", "INPUT(b)", "OUTPUT(o)",
		"o = AND(a, mid)",
		"mid = OR(a, b)",
	}, "\n"))

	res, err := aig.Build(c)
	require.NoError(t, err)
	assert.NotEqual(t, aig.False, res.Outputs[0])
}

func TestBuildUndefinedSignal(t *testing.T) {
	c := &gate.Circuit{
		Inputs:  []string{"a"},
		Outputs: []gate.Operand{{Name: "o"}},
		Gates:   []gate.Gate{{Kind: gate.KindBuf, Output: "o", Operands: []gate.Operand{{Name: "ghost"}}}},
	}
	_, err := aig.Build(c)
	require.Error(t, err)
}

func TestBuildConstantContradiction(t *testing.T) {
	c := parseBench(t, strings.Join([]string{
		"INPUT(a)", "OUTPUT(o)", "n1 = NOT(a)", "o = AND(a, n1)",
	}, "\n"))

	res, err := aig.Build(c)
	require.NoError(t, err)
	assert.Equal(t, aig.False, res.Outputs[0])
}

func TestConeAndSimplify(t *testing.T) {
	c := parseBench(t, strings.Join([]string{
		"INPUT(a)", "INPUT(b)", "INPUT(unused)", "OUTPUT(o)",
		"o = AND(a, b)",
	}, "\n"))

	res, err := aig.Build(c)
	require.NoError(t, err)

	coneNodes, coneInputs := res.AIG.Cone(res.Outputs[0])
	assert.Len(t, coneInputs, 2) // "unused" is not in the fan-in cone

	simplified, out := aig.Simplify(res.AIG, res.Outputs[0], coneNodes)
	assert.Equal(t, 2, simplified.NumInputs())
	assert.NotEqual(t, aig.False, out)
	assert.NotEqual(t, aig.True, out)
}
