// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// errMismatch is returned by --verify when the two products differ.
var errMismatch = errors.New("strassen product differs from classical product")

// runFlags are the switches that do not live in config.Config.
type runFlags struct {
	verify  bool
	quiet   bool
	noColor bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var rf runFlags

	root := &cobra.Command{
		Use:   "strassen",
		Short: "Multiply random matrices with parallel Strassen recursion",
		Long: `strassen generates two random N×N integer matrices (N a power of two),
multiplies them with Strassen's algorithm on a bounded worker pool and prints
the operands, the product and the elapsed time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			applyTrace(cfg.Trace)
			if rf.noColor {
				color.NoColor = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMultiply(cmd, cfg, rf)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&cfg.Size, "size", "n", cfg.Size, "matrix extent N (power of two)")
	pf.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "worker count, 0 = GOMAXPROCS")
	pf.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 = fixed default")
	pf.Int64Var(&cfg.MaxValue, "max", cfg.MaxValue, "random entries are drawn from [0, max)")
	pf.StringVar(&cfg.Trace, "trace", cfg.Trace, "trace level: error, info or debug")
	pf.BoolVar(&rf.noColor, "no-color", false, "disable colored output")

	f := root.Flags()
	f.IntVarP(&cfg.Threshold, "threshold", "t", cfg.Threshold, "classical multiplication at or below this size")
	f.BoolVar(&rf.verify, "verify", false, "check the product against classical multiplication")
	f.BoolVarP(&rf.quiet, "quiet", "q", false, "print timing only")

	root.AddCommand(newTuneCmd(cfg))

	return root
}

func runMultiply(cmd *cobra.Command, cfg *config.Config, rf runFlags) error {
	out := cmd.OutOrStdout()

	a, b, err := matrix.NewRandomPair(cfg.Size, cfg.MaxValue, cfg.Seed)
	if err != nil {
		return err
	}
	pool := strassen.NewPool(cfg.Workers)
	defer pool.Close()

	start := time.Now()
	c, err := strassen.Multiply(a, b, cfg.Size, cfg.Threshold, strassen.WithPool(pool))
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if !rf.quiet {
		width := terminalWidth(out)
		printMatrix(out, "A", a, width)
		printMatrix(out, "B", b, width)
		printMatrix(out, "C = A×B", c, width)
	}
	st := pool.Stats()
	fmt.Fprintf(out, "multiplied %d×%d in %s (threshold %d, %d workers)\n",
		cfg.Size, cfg.Size, elapsed, cfg.Threshold, pool.Workers())
	fmt.Fprintf(out, "tasks: %d forked, %d inline, %d classical leaves\n", st.Forked, st.Inlined, st.Leaves)

	if !rf.verify {
		return nil
	}
	start = time.Now()
	want, err := matrix.MultiplyClassical(a, b, 0, 0, 0, 0, cfg.Size)
	if err != nil {
		return err
	}
	if !c.Equal(want) {
		failed.Fprintln(out, "verify: MISMATCH")
		return errMismatch
	}
	passed.Fprintf(out, "verify: OK")
	fmt.Fprintf(out, " (classical took %s)\n", time.Since(start))

	return nil
}

// applyTrace sets the level of the engine's tracer.
func applyTrace(level string) {
	t := tracing.Select("strassen")
	switch level {
	case config.TraceDebug:
		t.SetTraceLevel(tracing.LevelDebug)
	case config.TraceInfo:
		t.SetTraceLevel(tracing.LevelInfo)
	default:
		t.SetTraceLevel(tracing.LevelError)
	}
}
