package gate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format selects which front-end parses a circuit file (§6).
type Format string

const (
	FormatAAG   Format = "aag"
	FormatBench Format = "bench"
	FormatAuto  Format = "auto"
)

// Parse reads and parses the circuit at path, dispatching on format (or on
// the file extension when format is FormatAuto or empty). It also returns
// the file size in bytes, echoed by §6's CountReport.
func Parse(path string, format Format) (*Circuit, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &ParseError{Reason: err.Error()}
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, 0, &ParseError{Reason: err.Error()}
	}

	resolved := format
	if resolved == FormatAuto || resolved == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".aag":
			resolved = FormatAAG
		case ".bench":
			resolved = FormatBench
		default:
			return nil, info.Size(), &ParseError{Reason: fmt.Sprintf("cannot infer format from extension %q; pass an explicit format", filepath.Ext(path))}
		}
	}

	var c *Circuit
	switch resolved {
	case FormatAAG:
		c, err = ParseAAG(f)
	case FormatBench:
		c, err = ParseBench(f)
	default:
		return nil, info.Size(), &ParseError{Reason: fmt.Sprintf("unknown format %q", resolved)}
	}
	return c, info.Size(), err
}

// WriteBench serializes a Circuit back to .bench text (the round-trip
// property of §8). It is only ever exercised by tests: the counting path
// never re-serializes a parsed circuit.
func WriteBench(w io.Writer, c *Circuit) error {
	for _, in := range c.Inputs {
		if _, err := fmt.Fprintf(w, "INPUT(%s)\n", in); err != nil {
			return err
		}
	}
	for _, out := range c.Outputs {
		if _, err := fmt.Fprintf(w, "OUTPUT(%s)\n", out.Name); err != nil {
			return err
		}
	}
	for _, g := range c.Gates {
		parts := make([]string, len(g.Operands))
		for i, op := range g.Operands {
			parts[i] = op.Name
		}
		if _, err := fmt.Fprintf(w, "%s = %s(%s)\n", g.Output, g.Kind, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}
