package preprocess

import (
	"path/filepath"
	"strconv"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// handleDirective dispatches one directive token. Conditional-compilation
// directives (`ifdef/`ifndef/`elsif/`else/`endif) are always processed so
// nesting stays balanced even inside an inactive branch; every other
// directive is skipped (its line discarded) while inactive.
func (p *Preprocessor) handleDirective(fr *frame, tok token.Token) {
	name := tok.Text[1:]

	switch name {
	case "ifdef":
		p.handleIfdef(fr, true)
		return
	case "ifndef":
		p.handleIfdef(fr, false)
		return
	case "elsif":
		p.handleElsif(fr, tok.Span)
		return
	case "else":
		if !p.elseBranch() {
			p.report(diag.PPElseWithoutIf, tok.Span, "`else without matching `ifdef")
		}
		return
	case "endif":
		if !p.endif() {
			p.report(diag.PPEndifWithoutIf, tok.Span, "`endif without matching `ifdef")
		}
		return
	}

	if !p.active() {
		collectLineTokens(fr.src)
		return
	}

	if p.opts.IgnoreDirectives[name] {
		collectLineTokens(fr.src)
		return
	}

	switch name {
	case "define":
		p.handleDefine(fr)
	case "undef":
		p.handleUndef(fr)
	case "undefineall":
		p.macros.UndefAll()
	case "include":
		p.handleInclude(fr, tok.Span)
	default:
		// resetall, celldefine, endcelldefine, timescale, line, pragma,
		// unconnected_drive, nounconnected_drive, begin/end_keywords:
		// no macro-table or conditional-compilation effect here.
		collectLineTokens(fr.src)
	}
}

func (p *Preprocessor) handleDefine(fr *frame) {
	nameTok := fr.src.Next()
	if nameTok.Kind != token.Ident {
		p.report(diag.PPExpectedMacroName, nameTok.Span, "expected macro name after `define")
		collectLineTokens(fr.src)
		return
	}
	def := &MacroDef{Name: nameTok.Text, DefinedAt: nameTok.Span}

	next := fr.src.Next()
	if next.Kind == token.Punct && next.Text == "(" && len(next.Leading) == 0 {
		def.Params = p.collectParamList(fr)
		def.Body = collectLineTokens(fr.src)
	} else {
		fr.src.Unget(next)
		def.Body = collectLineTokens(fr.src)
	}

	if existing, ok := p.macros.Lookup(def.Name); ok && !macroEquivalent(existing, def) {
		p.report(diag.PPMacroRedefined, nameTok.Span, "macro `"+def.Name+" redefined with a different body")
	}
	p.macros.Define(def)
}

func (p *Preprocessor) collectParamList(fr *frame) []string {
	params := []string{}
	for {
		t := fr.src.Next()
		if t.Kind == token.EOF {
			return params
		}
		if t.Kind == token.Punct && t.Text == ")" {
			return params
		}
		if t.Kind == token.Ident {
			params = append(params, t.Text)
		}
		sep := fr.src.Next()
		if sep.Kind == token.EOF || (sep.Kind == token.Punct && sep.Text == ")") {
			return params
		}
	}
}

func macroEquivalent(a, b *MacroDef) bool {
	if len(a.Params) != len(b.Params) || len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	for i := range a.Body {
		if a.Body[i].Kind != b.Body[i].Kind || a.Body[i].Text != b.Body[i].Text {
			return false
		}
	}
	return true
}

func (p *Preprocessor) handleUndef(fr *frame) {
	nameTok := fr.src.Next()
	if nameTok.Kind == token.Ident {
		p.macros.Undef(nameTok.Text)
	}
	collectLineTokens(fr.src)
}

func (p *Preprocessor) handleIfdef(fr *frame, isIfdef bool) {
	nameTok := fr.src.Next()
	isDefined := false
	if nameTok.Kind == token.Ident {
		_, isDefined = p.macros.Lookup(nameTok.Text)
	}
	cond := isDefined
	if !isIfdef {
		cond = !isDefined
	}
	collectLineTokens(fr.src)
	p.pushIf(cond)
}

func (p *Preprocessor) handleElsif(fr *frame, sp source.Span) {
	nameTok := fr.src.Next()
	isDefined := false
	if nameTok.Kind == token.Ident {
		_, isDefined = p.macros.Lookup(nameTok.Text)
	}
	collectLineTokens(fr.src)
	if !p.elsif(isDefined) {
		p.report(diag.PPElseWithoutIf, sp, "`elsif without matching `ifdef")
	}
}

func (p *Preprocessor) handleInclude(fr *frame, sp source.Span) {
	nameTok := fr.src.Next()
	if nameTok.Kind != token.String {
		p.report(diag.PPIncludeNotFound, sp, "expected a filename after `include")
		return
	}
	name := unquoteIncludePath(nameTok.Text)
	if len(p.frames) >= p.maxIncludeDepth {
		p.report(diag.PPIncludeDepthExceeded, sp, "maximum include depth exceeded")
		return
	}
	id, err, ok := p.mgr.Load(name, fr.dir)
	if !ok || err != nil {
		p.report(diag.PPIncludeNotFound, sp, "include file not found: "+name)
		return
	}
	file := p.mgr.FileSet().Get(id)
	p.PushSource(file, filepath.Dir(file.Path))
}

func unquoteIncludePath(text string) string {
	if unquoted, err := strconv.Unquote(text); err == nil {
		return unquoted
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

func (p *Preprocessor) expandMacro(fr *frame, tok token.Token) {
	name := tok.Text[1:]
	def, ok := p.macros.Lookup(name)
	if !ok {
		p.report(diag.PPUnknownMacro, tok.Span, "use of undefined macro `"+name)
		return
	}
	if len(p.frames) >= p.maxIncludeDepth {
		p.report(diag.PPIncludeDepthExceeded, tok.Span, "maximum macro expansion depth exceeded")
		return
	}

	var args [][]token.Token
	if def.IsFunctionLike() {
		args = p.collectMacroArgs(fr)
		if len(args) != len(def.Params) {
			p.report(diag.PPMacroArgCountMismatch, tok.Span, "macro invoked with the wrong number of arguments")
		}
	}

	expanded := def.bodyTokensForArgs(args)
	if len(expanded) == 0 {
		return
	}
	p.frames = append(p.frames, newMacroFrame(expanded))
}

func (p *Preprocessor) collectMacroArgs(fr *frame) [][]token.Token {
	open := fr.src.Next()
	if open.Kind != token.Punct || open.Text != "(" {
		fr.src.Unget(open)
		return nil
	}
	var args [][]token.Token
	var cur []token.Token
	depth := 0
	for {
		t := fr.src.Next()
		if t.Kind == token.EOF {
			args = append(args, cur)
			return args
		}
		if t.Kind == token.Punct && t.Text == "(" {
			depth++
			cur = append(cur, t)
			continue
		}
		if t.Kind == token.Punct && t.Text == ")" {
			if depth == 0 {
				args = append(args, cur)
				return args
			}
			depth--
			cur = append(cur, t)
			continue
		}
		if t.Kind == token.Punct && t.Text == "," && depth == 0 {
			args = append(args, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
}
