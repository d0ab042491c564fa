package driver

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/obfuscate"
	"github.com/KennethDRoe/slang/internal/preprocess"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// PreprocessOptions configures RunPreprocessor (spec §4.7's
// runPreprocessor(includeComments, includeDirectives, obfuscate, fixedSeed)).
type PreprocessOptions struct {
	IncludeComments   bool
	IncludeDirectives bool
	Obfuscate         bool
	FixedSeed         bool
}

// RunPreprocessor drives the preprocessor to end-of-file and writes the
// resulting token stream to ctx.Streams.Out. Diagnostics are buffered in a
// mode-local Bag; if any is an error, the full diagnostic report goes to
// stderr and the mode fails without emitting output (spec §4.7).
//
// includeDirectives is accepted for CLI-surface parity with the option the
// original driver exposes, but has no observable effect yet: the
// preprocessor consumes directive tokens internally (see Preprocessor.Next)
// and never re-surfaces them, so there is nothing to echo. Wiring verbatim
// directive echo would require the preprocessor to optionally re-emit the
// directive line's trivia and text before acting on it.
func RunPreprocessor(ctx *Context, opts PreprocessOptions) bool {
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
	// Push in reverse load order so Next() surfaces tokens in original
	// file order (spec §4.5).
	for i := len(ids) - 1; i >= 0; i-- {
		file := fs.Get(ids[i])
		pp.PushSource(file, filepath.Dir(file.Path))
	}

	var src obfuscate.TokenSource = pp
	if opts.Obfuscate {
		var mapper *obfuscate.Mapper
		if opts.FixedSeed {
			mapper = obfuscate.NewFixedSeed()
		} else {
			mapper = obfuscate.NewRandomSeed()
		}
		src = obfuscate.NewStream(pp, mapper)
	}

	var out bytes.Buffer
	for {
		tok := src.Next()
		if tok.Kind == token.EOF {
			break
		}
		writeTrivia(&out, tok.Leading, opts.IncludeComments)
		out.WriteString(tok.Text)
	}

	if bag.Len() > 0 {
		ctx.flushDiagnostics(bag, fs)
	}
	if bag.HasErrors() {
		return false
	}

	out.WriteTo(ctx.Streams.Out)
	return true
}

// writeTrivia writes leading trivia verbatim, dropping comment trivia when
// includeComments is false. Whitespace and newlines are always kept so the
// preprocess-round-trip property (spec §8 scenario 5) holds modulo
// whitespace, not modulo structure.
func writeTrivia(buf *bytes.Buffer, leading []token.Trivia, includeComments bool) {
	for _, tr := range leading {
		if !includeComments && (tr.Kind == token.TriviaLineComment || tr.Kind == token.TriviaBlockComment) {
			continue
		}
		buf.WriteString(tr.Text)
	}
}
