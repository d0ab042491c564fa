package syntax

import (
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// TokenSource is the token stream a Parser consumes; *preprocess.Preprocessor
// and obfuscate.Stream both satisfy it.
type TokenSource interface {
	Next() token.Token
}

// Options configures a Parser.
type Options struct {
	Reporter diag.Reporter // may be nil to discard diagnostics
}

// Parser scans a token stream for module declarations and the instance
// declarations they contain.
type Parser struct {
	src  TokenSource
	opts Options
	look *token.Token
}

// New returns a Parser reading from src.
func New(src TokenSource, opts Options) *Parser {
	return &Parser{src: src, opts: opts}
}

func (p *Parser) next() token.Token {
	if p.look != nil {
		t := *p.look
		p.look = nil
		return t
	}
	return p.src.Next()
}

func (p *Parser) unget(tok token.Token) { p.look = &tok }

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.Error, sp, msg, nil)
	}
}

// Parse consumes the whole token stream (until EOF) and returns every
// top-level module declaration found, tagged with fileID.
func (p *Parser) Parse(fileID source.FileID) *Tree {
	tree := &Tree{FileID: fileID}
	for {
		tok := p.next()
		switch {
		case tok.Kind == token.EOF:
			return tree
		case tok.Kind == token.Ident && tok.Text == "module":
			if m, ok := p.parseModule(tok.Span); ok {
				tree.Modules = append(tree.Modules, m)
			}
		case tok.Kind == token.Ident && tok.Text == "endmodule":
			p.report(diag.SynDanglingEndmodule, tok.Span, "endmodule without matching module")
		}
	}
}

// parseModule consumes `module NAME ... ; <body> endmodule`, collecting
// instance declarations inside the body. moduleKw is the span of the
// already-consumed `module` keyword.
func (p *Parser) parseModule(moduleKw source.Span) (Module, bool) {
	nameTok := p.next()
	if nameTok.Kind != token.Ident {
		p.report(diag.SynExpectedIdentifier, nameTok.Span, "expected module name after module")
		return Module{}, false
	}
	mod := Module{Name: nameTok.Text, Span: moduleKw}

	// Skip the optional parameter/port-list header up to the first ';'.
	for {
		tok := p.next()
		if tok.Kind == token.EOF {
			p.report(diag.SynUnclosedModule, moduleKw, "module '"+mod.Name+"' is missing endmodule")
			return mod, true
		}
		if tok.Kind == token.Punct && tok.Text == ";" {
			break
		}
	}

	for {
		tok := p.next()
		switch {
		case tok.Kind == token.EOF:
			p.report(diag.SynUnclosedModule, moduleKw, "module '"+mod.Name+"' is missing endmodule")
			return mod, true
		case tok.Kind == token.Ident && tok.Text == "endmodule":
			return mod, true
		case tok.Kind == token.Ident && tok.Text == "module":
			// Nested module declarations aren't legal SV, but recover by
			// parsing it and folding its instances into the enclosing
			// module rather than losing synchronization.
			if nested, ok := p.parseModule(tok.Span); ok {
				mod.Instances = append(mod.Instances, nested.Instances...)
			}
		case tok.Kind == token.Ident:
			if inst, ok := p.tryParseInstance(tok); ok {
				mod.Instances = append(mod.Instances, inst)
			}
		}
	}
}

// tryParseInstance recognizes the shape `TYPE_NAME instance_name (`,
// treating it as an instance declaration. Any other shape following an
// identifier (a type/variable declaration, a procedural statement, ...)
// is left alone: the lookahead token is pushed back unconsumed.
func (p *Parser) tryParseInstance(typeTok token.Token) (Instance, bool) {
	nameTok := p.next()
	if nameTok.Kind != token.Ident {
		p.unget(nameTok)
		return Instance{}, false
	}
	openTok := p.next()
	if openTok.Kind != token.Punct || openTok.Text != "(" {
		p.unget(openTok)
		p.unget(nameTok)
		return Instance{}, false
	}

	depth := 1
	for depth > 0 {
		tok := p.next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Punct && tok.Text == "(" {
			depth++
		}
		if tok.Kind == token.Punct && tok.Text == ")" {
			depth--
		}
	}

	return Instance{
		ModuleName:   typeTok.Text,
		InstanceName: nameTok.Text,
		Span:         typeTok.Span,
	}, true
}
