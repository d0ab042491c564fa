package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KennethDRoe/slang/internal/driver"
)

var preprocessCmd = &cobra.Command{
	Use:                "preprocess [options] file...",
	Short:              "Run only the preprocessor and print the resulting token stream",
	DisableFlagParsing: true,
	RunE:               runPreprocess,
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	color, quiet, _, _ := rootFlags(cmd)

	includeComments, args := extractBoolFlag(args, "--comments")
	includeDirectives, args := extractBoolFlag(args, "--directives")
	doObfuscate, args := extractBoolFlag(args, "--obfuscate")
	fixedSeed, args := extractBoolFlag(args, "--fixed-seed")

	ctx, ok := buildPipeline(args, color, quiet)
	if !ok {
		return fmt.Errorf("invalid options")
	}

	if !driver.RunPreprocessor(ctx, driver.PreprocessOptions{
		IncludeComments:   includeComments,
		IncludeDirectives: includeDirectives,
		Obfuscate:         doObfuscate,
		FixedSeed:         fixedSeed,
	}) {
		return fmt.Errorf("preprocessing failed")
	}
	return nil
}
