package count

import (
	"fmt"
	"math/big"
)

// Mode is the counting strategy actually used to answer a query (§4, §6).
type Mode string

const (
	ModeExact    Mode = "exact"
	ModeHashCell Mode = "hash-cell"
)

// Status is the outcome reported alongside a CountReport (§7).
type Status string

const (
	StatusOK          Status = "ok"
	StatusTimeout     Status = "timeout"
	StatusParseError  Status = "parse_error"
	StatusSolverError Status = "solver_error"
)

// CountReport is the external result of a counting query (§6). Every
// field named in §6 is present; Result is a big.Int because an exact
// count over a wide cone can exceed 64 bits.
type CountReport struct {
	Path       string
	Status     Status
	Backend    string
	Mode       Mode
	Seed       int64
	Pivot      int
	Trials     int
	R          int
	M          int
	SolveCalls int
	WallMS     int64
	FileBytes  int64
	AIGInputs  int
	AIGAnds    int
	InputsCOI  int
	Vars       int
	Clauses    int
	Ands       int
	Result     *big.Int
}

func (r *CountReport) resultString() string {
	if r.Result == nil {
		return "0"
	}
	return r.Result.String()
}

// FormatStdout renders the two-line §6 stdout format.
func (r *CountReport) FormatStdout() string {
	return fmt.Sprintf(
		"inputs_coi=%d ands=%d vars=%d clauses=%d pivot=%d trials=%d\n"+
			"backend=%s solve_calls=%d mode=%s result=%s m=%d trials=%d r=%d",
		r.InputsCOI, r.Ands, r.Vars, r.Clauses, r.Pivot, r.Trials,
		r.Backend, r.SolveCalls, r.Mode, r.resultString(), r.M, r.Trials, r.R,
	)
}

// CSVRow renders the exact benchmark CSV column order of §6. The driver
// that assembles these rows into a file is an external collaborator per
// §1's Non-goals; this module only produces the row.
func (r *CountReport) CSVRow() []string {
	return []string{
		r.Path, string(r.Status), r.Backend, string(r.Mode),
		fmt.Sprintf("%d", r.WallMS), fmt.Sprintf("%d", r.SolveCalls), r.resultString(),
		fmt.Sprintf("%d", r.M), fmt.Sprintf("%d", r.Trials), fmt.Sprintf("%d", r.R),
		fmt.Sprintf("%d", r.Seed), fmt.Sprintf("%d", r.FileBytes),
		fmt.Sprintf("%d", r.AIGInputs), fmt.Sprintf("%d", r.AIGAnds),
		fmt.Sprintf("%d", r.InputsCOI), fmt.Sprintf("%d", r.Vars), fmt.Sprintf("%d", r.Clauses),
	}
}
