package lexer

import "github.com/KennethDRoe/slang/internal/token"

// scanOperatorOrPunct scans the longest operator/punctuation run starting
// at the cursor, greedy longest-match-first. All results carry Kind.Punct;
// the exact operator is preserved verbatim in Text.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func() token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Punct, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch {
	case lx.try4('<', '<', '<', '='), lx.try4('>', '>', '>', '='):
		return emit()
	}

	switch {
	case lx.try3('<', '<', '<'), lx.try3('>', '>', '>'),
		lx.try3('=', '=', '='), lx.try3('!', '=', '='),
		lx.try3('<', '<', '='), lx.try3('>', '>', '='):
		return emit()
	}

	switch {
	case lx.try2('=', '='), lx.try2('!', '='), lx.try2('<', '='), lx.try2('>', '='),
		lx.try2('&', '&'), lx.try2('|', '|'), lx.try2('<', '<'), lx.try2('>', '>'),
		lx.try2('+', '+'), lx.try2('-', '-'), lx.try2('-', '>'),
		lx.try2('+', '='), lx.try2('-', '='), lx.try2('*', '='), lx.try2('/', '='),
		lx.try2('%', '='), lx.try2('&', '='), lx.try2('|', '='), lx.try2('^', '='),
		lx.try2(':', ':'), lx.try2('.', '*'), lx.try2('*', ')'), lx.try2('(', '*'),
		lx.try2('~', '&'), lx.try2('~', '|'), lx.try2('~', '^'), lx.try2('^', '~'):
		return emit()
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~',
		'?', ':', ';', ',', '.', '(', ')', '{', '}', '[', ']', '@', '#':
		return emit()
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report("unknown-char", sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try3(a, b, c byte) bool {
	save := lx.cursor.Mark()
	if !lx.try2(a, b) {
		return false
	}
	if lx.cursor.Peek() != c {
		lx.cursor.Reset(save)
		return false
	}
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try4(a, b, c, d byte) bool {
	save := lx.cursor.Mark()
	if !lx.try3(a, b, c) {
		return false
	}
	if lx.cursor.Peek() != d {
		lx.cursor.Reset(save)
		return false
	}
	lx.cursor.Bump()
	return true
}
