package lexer

import "github.com/KennethDRoe/slang/internal/token"

// scanNumber scans a plain decimal or real literal: digit groups, an
// optional fractional part, and an optional exponent. Based literals
// ('b, 'h, 'o, 'd) are handled separately by scanIntegerBase plus the
// pending-vector-digit-run mechanism in lexer.go.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.Number

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		return lx.finishNumberExponent(start, kind)
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			// ".." is never part of a numeric literal here; leave it alone.
		} else {
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	return lx.finishNumberExponent(start, kind)
}

func (lx *Lexer) finishNumberExponent(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(save)
		} else {
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanIntegerBase scans the "'[sS]?[bBoOdDhH]" portion of a based literal.
// The caller (Next) has already confirmed the leading "'".
func (lx *Lexer) scanIntegerBase() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''
	if b := lx.cursor.Peek(); b == 's' || b == 'S' {
		lx.cursor.Bump()
	}
	switch lx.cursor.Peek() {
	case 'b', 'B', 'o', 'O', 'd', 'D', 'h', 'H':
		lx.cursor.Bump()
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report("bad-number", sp, "expected b/o/d/h after '")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntegerBase, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanVectorDigitRun greedily consumes the unsized digit run that follows
// an IntegerBase token (hex digits, x/z/?, and digit-group underscores),
// regardless of whether individual characters look letter-shaped. Emitted
// as Kind Number so obfuscation's "never touch vector digits" rule applies
// uniformly without per-character lookback.
func (lx *Lexer) scanVectorDigitRun() token.Token {
	start := lx.cursor.Mark()
	for isBaseDigitByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
