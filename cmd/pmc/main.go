// Command pmc is the projected model counter CLI (§6): it parses an
// AIGER/.bench circuit, restricts it to one output's cone, and counts
// satisfying projected assignments exactly or, on pivot saturation,
// approximately via hash-cell counting.
package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/opcount/pmc/pkg/count"
	"github.com/opcount/pmc/pkg/gate"
	"github.com/opcount/pmc/pkg/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outIndex  int
		seed      int64
		pivot     int
		trials    int
		p         float64
		r         int
		backend   string
		format    string
		timeoutMS int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "pmc <path>",
		Short: "projected model counter for AIG/BENCH boolean circuits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			opts := count.Options{
				Seed:      seed,
				Pivot:     pivot,
				Trials:    trials,
				P:         p,
				R:         r,
				Backend:   solver.Backend(backend),
				Format:    gate.Format(format),
				TimeoutMS: timeoutMS,
			}

			report, err := count.Count(context.Background(), args[0], outIndex, opts)
			if report != nil {
				fmt.Println(report.FormatStdout())
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&outIndex, "out", 0, "index of the output to count (0-based)")
	flags.Int64Var(&seed, "seed", 1, "PRNG seed for hash-cell counting")
	flags.IntVar(&pivot, "pivot", 1<<16, "exact-enumeration cap before escalating to hash-cell counting")
	flags.IntVar(&trials, "trials", 1, "inner retry cap per hash-cell level attempt")
	flags.Float64Var(&p, "p", 0.5, "XOR-constraint inclusion density for hash-cell counting, in (0, 1]")
	flags.IntVar(&r, "r", 1, "number of independent hash-cell repetitions")
	flags.StringVar(&backend, "backend", "varisat", "SAT backend: dpll or varisat")
	flags.StringVar(&format, "format", "auto", "circuit format: aag, bench, or auto (infer from extension)")
	flags.IntVar(&timeoutMS, "timeout-ms", 0, "wall-clock deadline in milliseconds, 0 for none")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}
