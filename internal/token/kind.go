// Package token defines the lexical token vocabulary consumed by the
// preprocessor and the minimal syntax layer: identifiers, based numeric
// literals, strings, backtick directives, comments-as-trivia, and
// punctuation/operators.
package token

// Kind identifies the lexical category of a Token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	// Ident is a plain identifier: [A-Za-z_][A-Za-z0-9_$]*
	Ident
	// SysIdent is a system task/function identifier: $display, $finish, ...
	SysIdent
	// Directive is a backtick-prefixed preprocessor directive name, e.g.
	// `define, `include, `ifdef (the backtick and name together).
	Directive
	// MacroUsage is a backtick-prefixed macro invocation, e.g. `WIDTH.
	MacroUsage

	// Number is a numeric literal: plain decimal/real (123, 4.5, 1e3) or the
	// unsized-digit run following an IntegerBase token (FF, 1010, z).
	Number
	// IntegerBase is the "'[sS]?[bBoOdDhH]" portion of a based literal,
	// e.g. 'b, 'h, 'sd. The lexer emits it as its own token; the digits
	// that follow are lexed as Number or Ident depending on their shape.
	IntegerBase

	// String is a double-quoted string literal, including escapes.
	String

	// Punct covers operators and punctuation: (){}[];,.:#@*/+-<>=!&|^~%
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case SysIdent:
		return "sys-ident"
	case Directive:
		return "directive"
	case MacroUsage:
		return "macro-usage"
	case Number:
		return "number"
	case IntegerBase:
		return "integer-base"
	case String:
		return "string"
	case Punct:
		return "punct"
	default:
		return "unknown"
	}
}

// IsIdent reports whether k is an identifier-family token.
func (k Kind) IsIdent() bool {
	return k == Ident || k == SysIdent
}
