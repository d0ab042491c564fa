package lexer

import "github.com/KennethDRoe/slang/internal/source"

// Reporter is the thin sink the lexer calls for malformed input; it keeps
// this package free of a dependency on internal/diag's Code/Severity types.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configures a Lexer.
type Options struct {
	// Reporter receives malformed-token diagnostics. May be nil, in which
	// case the lexer keeps scanning and simply drops them.
	Reporter Reporter
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
