package lexer

import (
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// Lexer produces a stream of SystemVerilog-subset tokens from a single
// source file. It is not recursive and knows nothing about macros or
// `include — that is the preprocessor's job, layered on top.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia

	// afterBase is set immediately after emitting an IntegerBase token so
	// the next Next() call consumes the following digit run as a single
	// vector-digit token instead of going through normal dispatch.
	afterBase bool
}

// New constructs a Lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next returns the next significant token with its leading trivia attached.
// Past EOF it keeps returning an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if lx.afterBase {
		lx.afterBase = false
		tok := lx.scanVectorDigitRun()
		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '`':
		tok = lx.scanDirectiveOrMacro()

	case ch == '\'':
		tok = lx.scanIntegerBase()
		lx.afterBase = tok.Kind == token.IntegerBase

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Unget pushes tok back so the next Next() call returns it again. Used by
// the preprocessor when it over-reads by one token while scanning a
// directive line.
func (lx *Lexer) Unget(tok token.Token) {
	lx.look = &tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// scanDirectiveOrMacro scans a backtick followed by an identifier. The
// preprocessor decides, by name, whether this is a known directive
// (`define, `include, ...) or a macro invocation (`WIDTH); the lexer only
// recognizes the lexical shape.
func (lx *Lexer) scanDirectiveOrMacro() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	if !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.report("unknown-char", sp, "expected identifier after `")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	kind := token.Directive
	if !preprocessorDirectiveNames[text[1:]] {
		kind = token.MacroUsage
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// preprocessorDirectiveNames lists every directive name the preprocessor
// understands; anything else after a backtick is a macro invocation.
var preprocessorDirectiveNames = map[string]bool{
	"define": true, "undef": true, "undefineall": true,
	"ifdef": true, "ifndef": true, "elsif": true, "else": true, "endif": true,
	"include": true, "line": true, "timescale": true, "default_nettype": true,
	"resetall": true, "celldefine": true, "endcelldefine": true,
	"unconnected_drive": true, "nounconnected_drive": true, "pragma": true,
	"begin_keywords": true, "end_keywords": true,
}
