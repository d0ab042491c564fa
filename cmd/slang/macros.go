package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KennethDRoe/slang/internal/driver"
)

var macrosCmd = &cobra.Command{
	Use:                "macros [options] file...",
	Short:              "Run the preprocessor and report every macro definition it collects",
	DisableFlagParsing: true,
	RunE:               runMacros,
}

func runMacros(cmd *cobra.Command, args []string) error {
	color, quiet, _, _ := rootFlags(cmd)

	ctx, ok := buildPipeline(args, color, quiet)
	if !ok {
		return fmt.Errorf("invalid options")
	}

	if !driver.RunReportMacros(ctx) {
		return fmt.Errorf("report-macros failed")
	}
	return nil
}
