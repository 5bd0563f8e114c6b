// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

var defaultCandidates = []int{8, 16, 32, 64, 128}

func newTuneCmd(cfg *config.Config) *cobra.Command {
	var candidates []int

	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Time one multiplication per threshold candidate and report the fastest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTune(cmd, cfg, candidates)
		},
	}
	cmd.Flags().IntSliceVarP(&candidates, "candidates", "c", defaultCandidates, "thresholds to try")

	return cmd
}

func runTune(cmd *cobra.Command, cfg *config.Config, candidates []int) error {
	out := cmd.OutOrStdout()

	a, b, err := matrix.NewRandomPair(cfg.Size, cfg.MaxValue, cfg.Seed)
	if err != nil {
		return err
	}
	res, err := strassen.Tune(a, b, candidates, strassen.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "tuning %d×%d\n", cfg.Size, cfg.Size)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "threshold\telapsed\t")
	for _, t := range res.Timings {
		fmt.Fprintf(tw, "%d\t%s\t\n", t.Threshold, t.Elapsed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	best.Fprintf(out, "best threshold: %d\n", res.Best)

	return nil
}
