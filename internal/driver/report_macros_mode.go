package driver

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/preprocess"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// RunReportMacros drives the preprocessor to end-of-file to populate the
// macro table, then prints each defined macro's signature and body to
// ctx.Streams.Out (spec §4.7 "Report macros").
func RunReportMacros(ctx *Context) bool {
	fs := ctx.Mgr.FileSet()
	paths := ctx.Loader.ResolvedPaths()

	bag := diag.NewBag(1000)
	reporter := diag.BagReporter{Bag: bag}
	ctx.Engine.SetInner(reporter)
	ctx.Engine.ResetCounts()

	ids := make([]source.FileID, 0, len(paths))
	for _, p := range paths {
		id, err := fs.Load(p)
		if err != nil {
			reporter.Report(diag.IOLoadFileError, diag.Error, source.Span{}, fmt.Sprintf("unable to find or open file %q: %v", p, err), nil)
			continue
		}
		ids = append(ids, id)
	}

	pp := preprocess.New(ctx.Mgr, ctx.Engine, preprocess.Options{
		Predefines:       ctx.Bag.Preprocessor.Predefines,
		Undefines:        ctx.Bag.Preprocessor.Undefines,
		MaxIncludeDepth:  ctx.Bag.Preprocessor.MaxIncludeDepth,
		IgnoreDirectives: ctx.Bag.Preprocessor.IgnoreDirectives,
	})
	for i := len(ids) - 1; i >= 0; i-- {
		file := fs.Get(ids[i])
		pp.PushSource(file, filepath.Dir(file.Path))
	}

	for {
		tok := pp.Next()
		if tok.Kind == token.EOF {
			break
		}
	}

	if bag.Len() > 0 {
		ctx.flushDiagnostics(bag, fs)
	}
	if bag.HasErrors() {
		return false
	}

	var out bytes.Buffer
	for _, m := range pp.Macros().Defined() {
		writeMacroSignature(&out, m)
	}
	out.WriteTo(ctx.Streams.Out)
	return true
}

// writeMacroSignature renders one macro's name, formal-argument list (for
// function-like macros), and body, per spec §4.7's trivia rules: the name
// itself carries no trivia, and a missing leading-trivia run on the first
// body token gets a synthesized single space so name/args and body never
// run together.
//
// MacroDef.Params is a plain name list with no captured trivia (see
// preprocess/macro.go), so formal arguments are rendered comma-space
// separated rather than with their original source spacing; the spec's
// "include trivia for formal arguments" rule is honored to the extent the
// macro table retains it.
func writeMacroSignature(buf *bytes.Buffer, m *preprocess.MacroDef) {
	buf.WriteString(m.Name)
	if m.IsFunctionLike() {
		buf.WriteString("(")
		for i, p := range m.Params {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(p)
		}
		buf.WriteString(")")
	}
	if len(m.Body) > 0 && len(m.Body[0].Leading) == 0 {
		buf.WriteString(" ")
	}
	for _, tok := range m.Body {
		writeTrivia(buf, tok.Leading, true)
		buf.WriteString(tok.Text)
	}
	buf.WriteString("\n")
}
