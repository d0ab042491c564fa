// Package preprocess implements the macro table, conditional compilation,
// and `include resolution that sit between the lexer and the rest of the
// driver. It exposes a single lazy Next() token stream, mirroring the
// original driver's Preprocessor: sources are pushed onto a stack (the
// caller pushes in reverse load order so the first-loaded file surfaces
// first), and `include/macro expansion push further frames that are
// transparently popped once exhausted.
package preprocess

import (
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/lexer"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/token"
)

// Options configures a Preprocessor.
type Options struct {
	Predefines      map[string]string // name -> body text, from -D
	Undefines       []string          // names forced undefined, from -U
	MaxIncludeDepth int
	IgnoreDirectives map[string]bool // directive names to skip entirely
}

// Preprocessor lazily tokenizes a stack of pushed sources, expanding
// macros and resolving `include as it goes.
type Preprocessor struct {
	mgr      *sourcemgr.Manager
	macros   *MacroTable
	reporter diag.Reporter
	opts     Options

	frames    []*frame
	condStack []condFrame

	maxIncludeDepth int
}

// New constructs a Preprocessor. mgr resolves `include paths; reporter
// receives PP-phase diagnostics (may be nil to discard them).
func New(mgr *sourcemgr.Manager, reporter diag.Reporter, opts Options) *Preprocessor {
	p := &Preprocessor{
		mgr:      mgr,
		macros:   NewMacroTable(),
		reporter: reporter,
		opts:     opts,
	}
	p.maxIncludeDepth = opts.MaxIncludeDepth
	if p.maxIncludeDepth <= 0 {
		p.maxIncludeDepth = 200
	}
	for name, body := range opts.Predefines {
		p.macros.Define(&MacroDef{Name: name, Body: tokenizeBody(body)})
	}
	for _, name := range opts.Undefines {
		p.macros.Undef(name)
	}
	return p
}

// tokenizeBody lexes a -D command-line macro body (as a synthetic
// "<command-line>" virtual file) into a token slice.
func tokenizeBody(body string) []token.Token {
	if body == "" {
		return nil
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual("<command-line>", []byte(body))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Macros returns the live macro table, e.g. for `reportMacros.
func (p *Preprocessor) Macros() *MacroTable { return p.macros }

// PushSource lexes file and pushes it as the new top frame. Callers that
// load several top-level files must push them in reverse order so the
// first-loaded file is processed first.
func (p *Preprocessor) PushSource(file *source.File, dir string) {
	lx := lexer.New(file, lexer.Options{Reporter: &lexDiagAdapter{p: p}})
	p.frames = append(p.frames, newFileFrame(file, lx, dir))
}

type lexDiagAdapter struct{ p *Preprocessor }

var lexKindCodes = map[string]diag.Code{
	"unknown-char":        diag.LexUnknownChar,
	"unterminated-string": diag.LexUnterminatedString,
	"unterminated-block":  diag.LexUnterminatedBlock,
	"bad-number":          diag.LexBadNumber,
	"token-too-long":      diag.LexTokenTooLong,
}

func (a *lexDiagAdapter) Report(kind string, span source.Span, msg string) {
	if a.p.reporter == nil {
		return
	}
	code, ok := lexKindCodes[kind]
	if !ok {
		code = diag.UnknownCode
	}
	a.p.reporter.Report(code, diag.Error, span, msg, nil)
}

func (p *Preprocessor) top() *frame {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[len(p.frames)-1]
}

func (p *Preprocessor) report(code diag.Code, sp source.Span, msg string) {
	if p.reporter != nil {
		p.reporter.Report(code, diag.Error, sp, msg, nil)
	}
}

// Next returns the next token of the expanded, conditionally-compiled
// stream. It returns an EOF-kind token once every frame is exhausted.
func (p *Preprocessor) Next() token.Token {
	for {
		fr := p.top()
		if fr == nil {
			if len(p.condStack) > 0 {
				p.condStack = nil
			}
			return token.Token{Kind: token.EOF}
		}

		tok := fr.src.Next()

		if tok.Kind == token.EOF {
			p.frames = p.frames[:len(p.frames)-1]
			continue
		}

		if tok.Kind == token.Directive {
			p.handleDirective(fr, tok)
			continue
		}

		if !p.active() {
			continue
		}

		if tok.Kind == token.MacroUsage {
			p.expandMacro(fr, tok)
			continue
		}

		return tok
	}
}

func hasNewline(trivia []token.Trivia) bool {
	for _, t := range trivia {
		if t.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}

// collectLineTokens reads tokens from src until one arrives with a
// newline in its leading trivia (that token is pushed back) or EOF.
func collectLineTokens(src tokenSource) []token.Token {
	var out []token.Token
	for {
		tok := src.Next()
		if tok.Kind == token.EOF {
			return out
		}
		if hasNewline(tok.Leading) {
			src.Unget(tok)
			return out
		}
		out = append(out, tok)
	}
}
