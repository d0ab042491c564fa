package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KennethDRoe/slang/internal/driver"
	"github.com/KennethDRoe/slang/internal/observ"
)

var compileCmd = &cobra.Command{
	Use:                "compile [options] file...",
	Short:              "Parse, elaborate, and report the top-level instances of a design",
	DisableFlagParsing: true,
	RunE:               runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	color, quiet, timings, maxDiagnostics := rootFlags(cmd)

	ctx, ok := buildPipeline(args, color, quiet)
	if !ok {
		return fmt.Errorf("invalid options")
	}

	var timer *observ.Timer
	var phase int
	if timings {
		timer = observ.NewTimer()
		phase = timer.Begin("parse-and-compile")
	}

	succeeded := driver.RunParseAndCompile(ctx, maxDiagnostics)

	if timings {
		timer.End(phase, "")
		fmt.Fprintln(os.Stderr, timer.Summary())
	}

	if !succeeded {
		return fmt.Errorf("compilation failed")
	}
	return nil
}
