package gate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opcount/pmc/pkg/gate"
)

func TestParseAAG(t *testing.T) {
	// A single two-input AND gate: aag M=3 I=2 L=0 O=1 A=1
	src := strings.Join([]string{
		"aag 3 2 0 1 1",
		"2",
		"4",
		"6",
		"6 2 4",
	}, "\n")

	c, err := gate.ParseAAG(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, c.Inputs, 2)
	require.Len(t, c.Outputs, 1)
	require.Len(t, c.Gates, 1)
	assert.Equal(t, gate.KindAnd, c.Gates[0].Kind)
	assert.Equal(t, c.Gates[0].Output, c.Outputs[0].Name)
	assert.False(t, c.Outputs[0].Negated)
}

func TestParseAAGInvertedOutput(t *testing.T) {
	src := strings.Join([]string{
		"aag 3 2 0 1 1",
		"2",
		"4",
		"7",
		"6 2 4",
	}, "\n")
	c, err := gate.ParseAAG(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, c.Outputs[0].Negated)
}

func TestParseAAGRejectsLatches(t *testing.T) {
	src := "aag 3 1 1 1 1\n2\n4\n6\n6 2 4\n"
	_, err := gate.ParseAAG(strings.NewReader(src))
	require.Error(t, err)
	var seq *gate.UnsupportedSequential
	require.ErrorAs(t, err, &seq)
	assert.Equal(t, 1, seq.Latches)
}

func TestParseAAGMalformedHeader(t *testing.T) {
	_, err := gate.ParseAAG(strings.NewReader("not an aag file\n"))
	require.Error(t, err)
	var pe *gate.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseAAGHeaderInvariant(t *testing.T) {
	// M does not equal I+L+A
	_, err := gate.ParseAAG(strings.NewReader("aag 9 2 0 1 1\n2\n4\n6\n6 2 4\n"))
	require.Error(t, err)
}

func TestParseAAGLiteralOutOfRange(t *testing.T) {
	src := "aag 1 1 0 1 0\n2\n999\n"
	_, err := gate.ParseAAG(strings.NewReader(src))
	require.Error(t, err)
}
