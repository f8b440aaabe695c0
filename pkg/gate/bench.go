package gate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var benchGateKinds = map[string]Kind{
	"AND": KindAnd, "OR": KindOr, "NAND": KindNand, "NOR": KindNor,
	"XOR": KindXor, "XNOR": KindXnor, "NOT": KindNot, "BUF": KindBuf,
}

// ParseBench parses the ISCAS BENCH gate-list subset (§4.A): INPUT()/OUTPUT()
// declarations, "name = GATE(arg1, arg2, ...)" assignments, '#' line comments,
// and blank lines. Keywords and gate names are matched case-insensitively;
// signal names are not. Forward references (a gate or OUTPUT naming a signal
// declared later in the file) are accepted syntactically and validated only
// after the whole file has been read.
func ParseBench(r io.Reader) (*Circuit, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	c := &Circuit{}
	declared := map[string]bool{}
	referenced := map[string]int{}

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		upper := strings.ToUpper(raw)
		switch {
		case strings.HasPrefix(upper, "INPUT("):
			name, err := parenArg(raw, line)
			if err != nil {
				return nil, err
			}
			if declared[name] {
				return nil, &ParseError{Line: line, Reason: fmt.Sprintf("duplicate declaration of %q", name)}
			}
			c.Inputs = append(c.Inputs, name)
			declared[name] = true
		case strings.HasPrefix(upper, "OUTPUT("):
			name, err := parenArg(raw, line)
			if err != nil {
				return nil, err
			}
			c.Outputs = append(c.Outputs, Operand{Name: name})
			referenced[name] = line
		default:
			if err := parseBenchAssignment(c, raw, line, declared, referenced); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	for name, ln := range referenced {
		if !declared[name] {
			return nil, &ParseError{Line: ln, Reason: fmt.Sprintf("reference to undefined name %q", name)}
		}
	}
	return c, nil
}

func parseBenchAssignment(c *Circuit, raw string, line int, declared map[string]bool, referenced map[string]int) error {
	eq := strings.Index(raw, "=")
	if eq < 0 {
		return &ParseError{Line: line, Reason: "expected assignment, INPUT(), or OUTPUT()"}
	}
	output := strings.TrimSpace(raw[:eq])
	rhs := strings.TrimSpace(raw[eq+1:])
	open := strings.Index(rhs, "(")
	if output == "" || open < 0 || !strings.HasSuffix(rhs, ")") {
		return &ParseError{Line: line, Reason: "malformed gate assignment"}
	}
	gateName := strings.ToUpper(strings.TrimSpace(rhs[:open]))
	kind, ok := benchGateKinds[gateName]
	if !ok {
		return &ParseError{Line: line, Reason: fmt.Sprintf("unknown gate %q", rhs[:open])}
	}
	argsStr := rhs[open+1 : len(rhs)-1]
	var operands []Operand
	for _, a := range strings.Split(argsStr, ",") {
		name := strings.TrimSpace(a)
		if name == "" {
			return &ParseError{Line: line, Reason: "empty operand in gate argument list"}
		}
		operands = append(operands, Operand{Name: name})
		referenced[name] = line
	}
	if (kind == KindNot || kind == KindBuf) && len(operands) != 1 {
		return &ParseError{Line: line, Reason: fmt.Sprintf("%s takes exactly one operand", kind)}
	}
	if kind != KindNot && kind != KindBuf && len(operands) < 2 {
		return &ParseError{Line: line, Reason: fmt.Sprintf("%s requires at least two operands", kind)}
	}
	if declared[output] {
		return &ParseError{Line: line, Reason: fmt.Sprintf("duplicate declaration of %q", output)}
	}
	c.Gates = append(c.Gates, Gate{Kind: kind, Output: output, Operands: operands})
	declared[output] = true
	return nil
}

func parenArg(raw string, line int) (string, error) {
	open := strings.Index(raw, "(")
	closeIdx := strings.LastIndex(raw, ")")
	if open < 0 || closeIdx < open {
		return "", &ParseError{Line: line, Reason: "malformed declaration, expected NAME(arg)"}
	}
	name := strings.TrimSpace(raw[open+1 : closeIdx])
	if name == "" {
		return "", &ParseError{Line: line, Reason: "empty name in declaration"}
	}
	return name, nil
}
