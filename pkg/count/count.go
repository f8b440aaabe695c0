// Package count implements §4.F (exact enumeration), §4.G (hash-cell
// approximate counting), and the external interface of §6: parse a
// circuit, restrict it to one output's fan-in cone, simplify, Tseitin
// encode, and count satisfying projected assignments exactly or, on pivot
// saturation, approximately.
package count

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/opcount/pmc/pkg/aig"
	"github.com/opcount/pmc/pkg/cnf"
	"github.com/opcount/pmc/pkg/gate"
	"github.com/opcount/pmc/pkg/solver"
)

// Count implements the §6 counting API: parse path, restrict to the
// out_index'th output's cone, simplify, and count. It always returns a
// best-effort CountReport, even on error, so a caller can inspect partial
// statistics (file size, parse stage reached) alongside the error.
func Count(ctx context.Context, path string, outIndex int, opts Options) (*CountReport, error) {
	opts = opts.withDefaults()
	start := time.Now()

	report := &CountReport{
		Path:    path,
		Backend: string(opts.Backend),
		Seed:    opts.Seed,
		Pivot:   opts.Pivot,
		Trials:  opts.Trials,
		R:       opts.R,
		Mode:    ModeExact,
	}

	circuit, fileBytes, err := gate.Parse(path, opts.Format)
	report.FileBytes = fileBytes
	if err != nil {
		report.Status = StatusParseError
		return report, errors.Wrap(err, "parsing circuit")
	}
	if outIndex < 0 || outIndex >= len(circuit.Outputs) {
		report.Status = StatusParseError
		return report, &InvalidOutputIndex{Index: outIndex, NumOutputs: len(circuit.Outputs)}
	}

	built, err := aig.Build(circuit)
	if err != nil {
		report.Status = StatusParseError
		return report, errors.Wrap(err, "building AIG")
	}
	report.AIGInputs = built.AIG.NumInputs()
	report.AIGAnds = built.AIG.NumAnds()

	outputLit := built.Outputs[outIndex]
	coneNodes, coneInputs := built.AIG.Cone(outputLit)
	report.InputsCOI = len(coneInputs)

	log.WithFields(log.Fields{
		"path": path, "inputs_coi": len(coneInputs), "cone_nodes": len(coneNodes),
	}).Debug("restricted circuit to output fan-in cone")

	simplified, simpleOut := aig.Simplify(built.AIG, outputLit, coneNodes)
	report.Ands = simplified.NumAnds()

	// §4.C's constant-output shortcut: a constant cone never reaches the
	// solver at all, and solve_calls stays 0.
	if simpleOut == aig.False {
		report.Result = big.NewInt(0)
		report.Status = StatusOK
		report.WallMS = time.Since(start).Milliseconds()
		return report, nil
	}
	if simpleOut == aig.True {
		report.Result = new(big.Int).Lsh(big.NewInt(1), uint(len(coneInputs)))
		report.Status = StatusOK
		report.WallMS = time.Since(start).Milliseconds()
		return report, nil
	}

	encoded := cnf.Encode(simplified, simpleOut)
	report.Vars = encoded.CNF.NumVars
	report.Clauses = len(encoded.CNF.Clauses)

	dl := newDeadline(ctx, opts.TimeoutMS)
	s, err := solver.New(opts.Backend, encoded.CNF.NumVars, encoded.CNF.Clauses)
	if err != nil {
		report.Status = StatusSolverError
		return report, errors.Wrap(err, "constructing solver")
	}

	exactRes, err := exactCount(s, encoded.Projection, opts.Pivot, dl)
	if err != nil {
		report.Status = StatusSolverError
		return report, errors.Wrap(err, "exact enumeration")
	}
	report.SolveCalls = exactRes.solveCalls

	switch exactRes.outcome {
	case outcomeExact:
		report.Mode = ModeExact
		report.Result = exactRes.count
		report.Status = StatusOK

	case outcomeTimedOut:
		report.Status = StatusTimeout
		report.Result = exactRes.count
		report.WallMS = time.Since(start).Milliseconds()
		return report, nil

	case outcomeSaturated:
		log.WithFields(log.Fields{"path": path, "pivot": opts.Pivot}).
			Debug("exact enumeration saturated, escalating to hash-cell counting")
		hc, calls, hcErr := hashCellCount(encoded.CNF, encoded.Projection, opts, dl)
		report.SolveCalls += calls
		if errors.Is(hcErr, errTimedOut) {
			report.Status = StatusTimeout
			report.WallMS = time.Since(start).Milliseconds()
			return report, nil
		}
		if hcErr != nil {
			report.Status = StatusSolverError
			return report, errors.Wrap(hcErr, "hash-cell counting")
		}
		report.Mode = ModeHashCell
		report.Result = hc.estimate
		report.M = hc.m
		report.Status = StatusOK
	}

	report.WallMS = time.Since(start).Milliseconds()
	log.WithFields(log.Fields{
		"path": path, "mode": report.Mode, "result": report.Result.String(),
		"solve_calls": report.SolveCalls,
	}).Info("count complete")

	return report, nil
}
