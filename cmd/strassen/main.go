// SPDX-License-Identifier: MIT

// Command strassen multiplies two random power-of-two matrices with the
// parallel Strassen engine, optionally checks the product against classical
// multiplication, and sweeps classical-cutoff thresholds with `strassen tune`.
//
// Settings come from a .env file, then STRASSEN_* environment variables, then
// command-line flags.
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/katalvlaran/strassen/config"
)

func main() {
	installTracing()

	cfg, err := config.Load()
	if err != nil {
		gtrace.CoreTracer.Errorf("strassen: %v", err)
		os.Exit(2)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		gtrace.CoreTracer.Errorf("strassen: %v", err)
		os.Exit(1)
	}
}

// installTracing routes every tracing.Select key, and the core tracer, to the
// Go log adapter at error level. The --trace flag raises the "strassen" key.
func installTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	tracing.Select("strassen").SetTraceLevel(tracing.LevelError)
}
