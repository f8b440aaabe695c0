package cnf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcount/pmc/pkg/aig"
	"github.com/opcount/pmc/pkg/cnf"
	"github.com/opcount/pmc/pkg/gate"
)

func TestEncodeSingleAnd(t *testing.T) {
	c, err := gate.ParseBench(strings.NewReader(strings.Join([]string{
		"INPUT(a)", "INPUT(b)", "OUTPUT(o)", "o = AND(a, b)",
	}, "\n")))
	require.NoError(t, err)

	built, err := aig.Build(c)
	require.NoError(t, err)
	coneNodes, coneInputs := built.AIG.Cone(built.Outputs[0])
	require.Len(t, coneInputs, 2)

	simplified, out := aig.Simplify(built.AIG, built.Outputs[0], coneNodes)
	res := cnf.Encode(simplified, out)

	assert.Equal(t, []int{1, 2}, res.Projection)
	assert.Equal(t, 3, res.CNF.NumVars) // 2 inputs + 1 AND gate variable
	// 3 Tseitin clauses for the AND gate + 1 unit clause forcing the output.
	assert.Len(t, res.CNF.Clauses, 4)

	unit := res.CNF.Clauses[len(res.CNF.Clauses)-1]
	require.Len(t, unit, 1)
	assert.Equal(t, int32(3), unit[0])
}

func TestEncodeVariableNumberingOrder(t *testing.T) {
	c, err := gate.ParseBench(strings.NewReader(strings.Join([]string{
		"INPUT(x)", "INPUT(y)", "INPUT(z)", "OUTPUT(o)",
		"t1 = AND(x, y)",
		"o = AND(t1, z)",
	}, "\n")))
	require.NoError(t, err)

	built, err := aig.Build(c)
	require.NoError(t, err)
	coneNodes, _ := built.AIG.Cone(built.Outputs[0])
	simplified, out := aig.Simplify(built.AIG, built.Outputs[0], coneNodes)
	res := cnf.Encode(simplified, out)

	assert.Equal(t, []int{1, 2, 3}, res.Projection)
	assert.Equal(t, 5, res.CNF.NumVars) // 3 inputs + 2 AND gates
}
