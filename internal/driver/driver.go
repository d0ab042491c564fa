// Package driver composes C2-C7 (cliparse, cmdfile, sourcemgr,
// sourceloader, diagengine, optbag) into the three top-level entry points
// from spec §4.7/§6: preprocess-only, report-macros, and parse-and-compile.
// Each mode returns a boolean success, matching "Exit behavior": the
// caller translates that into a process exit code, never an exception.
package driver

import (
	"io"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/diagengine"
	"github.com/KennethDRoe/slang/internal/diagfmt"
	"github.com/KennethDRoe/slang/internal/optbag"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/sourceloader"
)

// Streams bundles the driver's two output channels: build summaries,
// macro dumps, and preprocessed/obfuscated source go to Out; diagnostics
// go to Err (spec §6 "Output channels").
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Context bundles everything a mode needs that isn't mode-specific: the
// validated option bag, the shared source manager and loader, the
// diagnostic engine configured by optbag.Build, and the output streams.
type Context struct {
	Bag     *optbag.Bag
	Mgr     *sourcemgr.Manager
	Loader  *sourceloader.Loader
	Engine  *diagengine.Engine
	Streams Streams
	Quiet   bool
}

// flushDiagnostics renders bag to ctx.Streams.Err in the teacher-idiom
// pretty format, using the bag's own color/path-mode settings.
func (ctx *Context) flushDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	bag.Sort()
	diagfmt.Pretty(ctx.Streams.Err, bag, fs, diagfmt.PrettyOpts{
		Color:     ctx.Bag.ColorDiagnostics,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: ctx.Bag.DiagDisplay.IncludeStack || ctx.Bag.DiagDisplay.MacroExpansion,
	})
}
