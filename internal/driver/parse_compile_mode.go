package driver

import (
	"fmt"
	"regexp"

	"github.com/KennethDRoe/slang/internal/compilation"
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/diagfmt"
)

// pragmaPattern recognizes `pragma diagnostic (ignore|warn|error) "-Wname"`
// occurring anywhere in a source file's raw bytes (spec §4.7 "apply severity
// mappings from in-source pragmas", GLOSSARY "Pragma"). The severity change
// is applied for the whole file rather than scoped to the pragma's exact
// lexical extent: the token layer (internal/syntax) discards trivia once a
// module/instance shape is recognized, so a push/pop region tracker has no
// span to key off yet. Recorded as a simplification, not silently dropped.
var pragmaPattern = regexp.MustCompile(`pragma\s+diagnostic\s+(ignore|warn|error)\s+"-W([a-zA-Z0-9-]+)"`)

func applyPragmaSeverities(engine interface {
	SetWarningOptions([]string) []error
}, content []byte) {
	for _, m := range pragmaPattern.FindAllSubmatch(content, -1) {
		action, name := string(m[1]), string(m[2])
		var opt string
		switch action {
		case "ignore":
			opt = "-" + name
		case "error":
			opt = "error=" + name
		default:
			opt = name
		}
		engine.SetWarningOptions([]string{opt})
	}
}

// RunParseAndCompile drives the source loader's parallel parse, applies
// in-source pragma severity mappings, merges every per-file diagnostic Bag
// through the (single-writer) diagnostic engine in file-resolution order,
// binds the parsed trees into a compilation.Unit, and prints the top
// instance list plus a Build succeeded/failed summary (spec §4.7
// "Parse-and-report").
func RunParseAndCompile(ctx *Context, perFileMaxDiagnostics int) bool {
	fs := ctx.Mgr.FileSet()
	results := ctx.Loader.LoadAndParseSources(perFileMaxDiagnostics, ctx.Bag.Source.NumThreads)

	for _, r := range results {
		if r.Tree == nil {
			continue
		}
		file := fs.Get(r.Tree.FileID)
		applyPragmaSeverities(ctx.Engine, file.Content)
	}

	engineBag := diag.NewBag(1000)
	ctx.Engine.SetInner(diag.BagReporter{Bag: engineBag})
	ctx.Engine.ResetCounts()

	// Merge every worker's Bag through the engine, in the loader's
	// deterministic input-order slice (spec §5: output ordering must not
	// reflect worker scheduling).
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		for _, d := range r.Bag.Items() {
			ctx.Engine.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
		}
	}

	unit := compilation.New(compilation.Options{
		TopModules:           ctx.Bag.Compilation.TopModules,
		IgnoreUnknownModules: ctx.Bag.Compilation.IgnoreUnknownModules,
	}, ctx.Engine)
	for _, r := range results {
		if r.Tree != nil {
			unit.AddSyntaxTree(r.Tree)
		}
	}
	unit.CheckUnknownModules()

	if !ctx.Quiet {
		for _, m := range unit.TopInstances() {
			fmt.Fprintln(ctx.Streams.Out, m.Name)
		}
	}

	if engineBag.Len() > 0 {
		ctx.flushDiagnostics(engineBag, fs)
	}
	diagfmt.BuildSummary(ctx.Streams.Out, engineBag, ctx.Bag.ColorDiagnostics)

	return !engineBag.HasErrors()
}
