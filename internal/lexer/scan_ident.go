package lexer

import "github.com/KennethDRoe/slang/internal/token"

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* or a $-prefixed system
// identifier. SystemVerilog keywords are not modeled as distinct token
// kinds here (the driver never inspects them); they come through as Ident.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	sys := lx.cursor.Peek() == '$'

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp}
	}

	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	kind := token.Ident
	if sys {
		kind = token.SysIdent
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
