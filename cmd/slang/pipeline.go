package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KennethDRoe/slang/internal/cliparse"
	"github.com/KennethDRoe/slang/internal/cmdfile"
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/diagengine"
	"github.com/KennethDRoe/slang/internal/diagfmt"
	"github.com/KennethDRoe/slang/internal/driver"
	"github.com/KennethDRoe/slang/internal/optbag"
	"github.com/KennethDRoe/slang/internal/optschema"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/sourceloader"
)

// rootFlags reads the persistent flags declared on rootCmd, following the
// teacher's tokenizeCmd pattern of reaching through cmd.Root() rather than
// re-declaring the same flags on every subcommand.
func rootFlags(cmd *cobra.Command) (color string, quiet, timings bool, maxDiagnostics int) {
	color, _ = cmd.Root().PersistentFlags().GetString("color")
	quiet, _ = cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ = cmd.Root().PersistentFlags().GetBool("timings")
	maxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	return
}

// colorTTYs resolves the --color policy to the (stderr, stdout) tty booleans
// optbag.Build's color-policy step (spec §4.6 step 1) expects, short-
// circuiting real terminal detection for "on"/"off".
func colorTTYs(color string) (stderrTTY, stdoutTTY bool) {
	switch color {
	case "on":
		return true, true
	case "off":
		return false, false
	default:
		return isTerminal(os.Stderr), isTerminal(os.Stdout)
	}
}

// buildPipeline assembles C1-C7 for one driver invocation: it builds the
// option schema and a fresh parser/bindings pair, wires -f/-F command-file
// re-entry, parses rawArgs as a single joined string (the driver's own
// grammar is not cobra flags, per SPEC_FULL.md §3), then runs C7's
// validation to produce a driver.Context. On validation failure, any
// accumulated diagnostics are printed to stderr and ok is false.
func buildPipeline(rawArgs []string, color string, quiet bool) (*driver.Context, bool) {
	schema := optschema.Driver()
	bindings := cliparse.NewBindings()
	positional := func(v string) error {
		bindings.Positional = append(bindings.Positional, v)
		return nil
	}
	parser := cliparse.New(schema, positional)

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cmdLoader := cmdfile.New(parser, bindings, 0)
	cmdLoader.InstallTopLevelCallbacks(wd)

	parser.Parse(strings.Join(rawArgs, " "), cliparse.Options{
		ExpandEnvVars:   true,
		SupportComments: true,
	}, bindings)

	fs := source.NewFileSet()
	mgr := sourcemgr.New(fs)
	engine := diagengine.New(nil, fs)

	var loadErrs []error
	loader := sourceloader.New(mgr, func(err error) { loadErrs = append(loadErrs, err) })
	for _, f := range bindings.Positional {
		loader.AddFiles(f)
	}
	// Library files (-v) are registered by optbag.Build's step 6
	// (spec §4.6), not here — registering them twice would load and
	// parse each one twice, producing duplicate-definition errors.

	stderrTTY, stdoutTTY := colorTTYs(color)
	if color == "on" {
		bindings.Scalars["color-diagnostics"] = "true"
	}

	valBag := diag.NewBag(1000)
	valReporter := diag.BagReporter{Bag: valBag}

	bag, ok := optbag.Build(bindings, optbag.Env{
		Engine:        engine,
		SourceManager: mgr,
		SourceLoader:  loader,
		StderrIsTTY:   stderrTTY,
		StdoutIsTTY:   stdoutTTY,
	}, valReporter)

	for _, err := range parser.Errors() {
		valReporter.Report(diag.ProjInvalidOptionValue, diag.Error, source.Span{}, err.Error(), nil)
		ok = false
	}
	for _, err := range loadErrs {
		valReporter.Report(diag.IOLoadFileError, diag.Error, source.Span{}, err.Error(), nil)
		ok = false
	}
	if cmdLoader.AnyLoadFailed() {
		ok = false
	}
	if !loader.HasFiles() {
		valReporter.Report(diag.ProjNoInputFiles, diag.Error, source.Span{}, "no input files", nil)
		ok = false
	}

	if !ok {
		valBag.Sort()
		diagfmt.Pretty(os.Stderr, valBag, fs, diagfmt.PrettyOpts{
			Color:    bag != nil && bag.ColorDiagnostics,
			PathMode: diagfmt.PathModeAuto,
		})
		return nil, false
	}

	return &driver.Context{
		Bag:    bag,
		Mgr:    mgr,
		Loader: loader,
		Engine: engine,
		Streams: driver.Streams{
			Out: os.Stdout,
			Err: os.Stderr,
		},
		Quiet: quiet,
	}, true
}
