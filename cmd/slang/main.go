package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KennethDRoe/slang/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "slang",
	Short: "SystemVerilog compilation driver",
	Long: `slang drives command assembly, source acquisition, preprocessing, and
compilation assembly for a SystemVerilog source set.

Global flags (--color, --quiet, --timings, --max-diagnostics) must come
before the subcommand name; everything after it is the driver's own
option grammar (-D, -I, +incdir+, -f, ...), passed through unparsed.`,
}

// main registers subcommands and persistent flags, then executes the root
// command, mirroring the teacher's cobra wiring in cmd/surge/main.go.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(preprocessCmd)
	rootCmd.AddCommand(macrosCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show phase timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 1000, "maximum number of diagnostics buffered per run")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is a tty, used for color auto-detection.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
