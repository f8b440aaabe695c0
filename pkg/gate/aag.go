package gate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// litName derives a stable internal signal name for an AIGER variable
// index. Variable 0 is reserved for the constant node and maps to the
// name "$const", which the AIG builder resolves to constant false.
func litName(v uint32) string {
	if v == 0 {
		return "$const"
	}
	return fmt.Sprintf("v%d", v)
}

// ParseAAG parses an AIGER ASCII (.aag) netlist (§4.A). Only the
// combinational subset is supported: a non-zero latch count is rejected
// with UnsupportedSequential rather than silently ignored. Symbol and
// comment sections following the AND lines are ignored.
func ParseAAG(r io.Reader) (*Circuit, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	header, ok := nextLine()
	if !ok {
		return nil, &ParseError{Line: line, Reason: "empty file"}
	}
	fields := strings.Fields(header)
	if len(fields) != 6 || fields[0] != "aag" {
		return nil, &ParseError{Line: line, Reason: "malformed aag header, expected 'aag M I L O A'"}
	}
	nums := make([]int, 5)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, &ParseError{Line: line, Reason: "malformed aag header field"}
		}
		nums[i] = n
	}
	m, i, l, o, a := nums[0], nums[1], nums[2], nums[3], nums[4]
	if l != 0 {
		return nil, &UnsupportedSequential{Latches: l}
	}
	if i+l+a != m {
		return nil, &ParseError{Line: line, Reason: "header invariant M = I + L + A violated"}
	}

	maxLit := uint64(2*m + 1)
	readLit := func(section string) (uint32, error) {
		txt, ok := nextLine()
		if !ok {
			return 0, &ParseError{Line: line, Reason: "unexpected end of file in " + section + " section"}
		}
		v, err := strconv.ParseUint(strings.TrimSpace(txt), 10, 32)
		if err != nil {
			return 0, &ParseError{Line: line, Reason: "malformed literal in " + section + " section"}
		}
		if v > maxLit {
			return 0, &ParseError{Line: line, Reason: "literal out of range in " + section + " section"}
		}
		return uint32(v), nil
	}

	c := &Circuit{}
	for n := 0; n < i; n++ {
		lit, err := readLit("input")
		if err != nil {
			return nil, err
		}
		if lit == 0 || lit%2 != 0 {
			return nil, &ParseError{Line: line, Reason: "input literal must be even and non-zero"}
		}
		c.Inputs = append(c.Inputs, litName(lit>>1))
	}
	for n := 0; n < o; n++ {
		lit, err := readLit("output")
		if err != nil {
			return nil, err
		}
		c.Outputs = append(c.Outputs, Operand{Name: litName(lit >> 1), Negated: lit&1 == 1})
	}
	for n := 0; n < a; n++ {
		txt, ok := nextLine()
		if !ok {
			return nil, &ParseError{Line: line, Reason: "unexpected end of file in AND section"}
		}
		f := strings.Fields(txt)
		if len(f) != 3 {
			return nil, &ParseError{Line: line, Reason: "malformed AND line, expected 'lhs rhs0 rhs1'"}
		}
		lits := make([]uint32, 3)
		for k, s := range f {
			v, err := strconv.ParseUint(s, 10, 32)
			if err != nil || v > maxLit {
				return nil, &ParseError{Line: line, Reason: "malformed or out-of-range literal in AND line"}
			}
			lits[k] = uint32(v)
		}
		lhs, rhs0, rhs1 := lits[0], lits[1], lits[2]
		if lhs == 0 || lhs%2 != 0 {
			return nil, &ParseError{Line: line, Reason: "AND lhs literal must be even and non-zero"}
		}
		c.Gates = append(c.Gates, Gate{
			Kind:   KindAnd,
			Output: litName(lhs >> 1),
			Operands: []Operand{
				{Name: litName(rhs0 >> 1), Negated: rhs0&1 == 1},
				{Name: litName(rhs1 >> 1), Negated: rhs1&1 == 1},
			},
		})
	}
	return c, nil
}
